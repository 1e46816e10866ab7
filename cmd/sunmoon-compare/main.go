// Command sunmoon-compare sweeps a year of sunrise and sunset times and
// reports how far this module's solver sits from the independent NOAA-style
// implementation in github.com/nathan-osman/go-sunrise. The two algorithms
// legitimately disagree by a minute or two; the sweep exists to catch
// regressions much bigger than that, and to map where the disagreement
// lives across seasons and latitudes.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/nathan-osman/go-sunrise"

	meeussunmoon "github.com/zyo00ody/MeeusSunMoon"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) avg() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

type signedStats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *signedStats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *signedStats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

func diffMinutesSigned(a, b time.Time) float64 {
	if a.IsZero() || b.IsZero() {
		return math.NaN()
	}
	return a.Sub(b).Minutes() // can be negative or positive
}

func main() {
	var (
		lat     = flag.Float64("lat", 0, "latitude in degrees (north positive)")
		lon     = flag.Float64("lon", 0, "longitude in degrees (east positive, west negative)")
		tzName  = flag.String("tz", "UTC", "IANA time zone for -verbose and -outcsv times")
		year    = flag.Int("year", 0, "year to sweep (default this year)")
		verbose = flag.Bool("verbose", false, "log per-day differences instead of only the summary")
		outCSV  = flag.String("outcsv", "", "optional path to write a per-day difference CSV")
	)

	flag.Parse()
	log.SetFlags(0)

	loc, err := time.LoadLocation(*tzName)
	if err != nil {
		log.Fatalf("failed to load timezone %q: %v", *tzName, err)
	}

	if *lat == 0 && *lon == 0 {
		log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Did you mean to set -lat/-lon?")
	}
	if *year == 0 {
		*year = time.Now().Year()
	}

	var outWriter *csv.Writer
	if *outCSV != "" {
		outFile, err := os.Create(*outCSV)
		if err != nil {
			log.Fatalf("failed to create outcsv %q: %v", *outCSV, err)
		}
		defer outFile.Close()

		outWriter = csv.NewWriter(outFile)
		defer outWriter.Flush()

		if err := outWriter.Write([]string{
			"date",
			"rise",
			"rise_ref",
			"set",
			"set_ref",
			"rise_signed_min",
			"set_signed_min",
			"class",
		}); err != nil {
			log.Fatalf("failed to write outcsv header: %v", err)
		}
	}

	where := meeussunmoon.Coordinates{Lat: *lat, Lon: *lon}
	cfg := meeussunmoon.Config{}

	var (
		riseStats       stats
		setStats        stats
		riseSignedStats signedStats
		setSignedStats  signedStats
		polarDays       int
		skipped         int
		totalDays       int
	)

	start := time.Date(*year, time.January, 1, 0, 0, 0, 0, loc)
	for date := start; date.Year() == *year; date = date.AddDate(0, 0, 1) {
		totalDays++
		dateStr := date.Format("2006-01-02")

		rise, err := meeussunmoon.Sunrise(date, where, cfg)
		if err != nil {
			log.Fatalf("%s: sunrise: %v", dateStr, err)
		}
		set, err := meeussunmoon.Sunset(date, where, cfg)
		if err != nil {
			log.Fatalf("%s: sunset: %v", dateStr, err)
		}

		if rise.Class != meeussunmoon.NormalEvent || set.Class != meeussunmoon.NormalEvent {
			polarDays++
			if outWriter != nil {
				rec := []string{dateStr, "", "", "", "", "", "", rise.Class.String()}
				if err := outWriter.Write(rec); err != nil {
					log.Printf("%s: failed to write outcsv: %v", dateStr, err)
				}
			}
			continue
		}

		refRise, refSet := sunrise.SunriseSunset(*lat, *lon, date.Year(), date.Month(), date.Day())
		if refRise.IsZero() || refSet.IsZero() {
			// The reference calls it a polar day where we found crossings;
			// near the polar circles the two models draw that line a day
			// or two apart.
			skipped++
			continue
		}

		gotRise := rise.Time.In(loc)
		gotSet := set.Time.In(loc)
		refRiseLoc := refRise.In(loc)
		refSetLoc := refSet.In(loc)

		riseSigned := diffMinutesSigned(gotRise, refRiseLoc)
		setSigned := diffMinutesSigned(gotSet, refSetLoc)

		riseStats.add(math.Abs(riseSigned))
		setStats.add(math.Abs(setSigned))
		riseSignedStats.add(riseSigned)
		setSignedStats.add(setSigned)

		if *verbose {
			fmt.Printf("%s: rise diff=%.2f min (got=%s ref=%s), set diff=%.2f min (got=%s ref=%s)\n",
				dateStr,
				math.Abs(riseSigned), gotRise.Format("15:04:05"), refRiseLoc.Format("15:04:05"),
				math.Abs(setSigned), gotSet.Format("15:04:05"), refSetLoc.Format("15:04:05"))
		}

		if outWriter != nil {
			rec := []string{
				dateStr,
				gotRise.Format("15:04:05"),
				refRiseLoc.Format("15:04:05"),
				gotSet.Format("15:04:05"),
				refSetLoc.Format("15:04:05"),
				fmt.Sprintf("%.6f", riseSigned),
				fmt.Sprintf("%.6f", setSigned),
				rise.Class.String(),
			}
			if err := outWriter.Write(rec); err != nil {
				log.Printf("%s: failed to write outcsv: %v", dateStr, err)
			}
		}
	}

	fmt.Println("=== sunmoon-compare summary ===")
	fmt.Printf("Year:    %d\n", *year)
	fmt.Printf("Lat/Lon: %.4f / %.4f\n", *lat, *lon)
	fmt.Printf("TZ:      %s\n", loc.String())
	fmt.Printf("Days:    %d total, %d compared, %d polar, %d skipped\n",
		totalDays, riseStats.count, polarDays, skipped)

	if riseStats.count == 0 {
		fmt.Println("No comparable days.")
		return
	}

	fmt.Println("\nRise |difference| (minutes):")
	fmt.Printf("  count: %d\n", riseStats.count)
	fmt.Printf("  min:   %.3f\n", riseStats.min)
	fmt.Printf("  max:   %.3f\n", riseStats.max)
	fmt.Printf("  avg:   %.3f\n", riseStats.avg())

	fmt.Println("\nSet |difference| (minutes):")
	fmt.Printf("  count: %d\n", setStats.count)
	fmt.Printf("  min:   %.3f\n", setStats.min)
	fmt.Printf("  max:   %.3f\n", setStats.max)
	fmt.Printf("  avg:   %.3f\n", setStats.avg())

	fmt.Println("\nRise signed difference (minutes, ours - reference):")
	fmt.Printf("  count: %d\n", riseSignedStats.count)
	fmt.Printf("  min:   %.3f\n", riseSignedStats.min)
	fmt.Printf("  max:   %.3f\n", riseSignedStats.max)
	fmt.Printf("  mean:  %.3f\n", riseSignedStats.mean())

	fmt.Println("\nSet signed difference (minutes, ours - reference):")
	fmt.Printf("  count: %d\n", setSignedStats.count)
	fmt.Printf("  min:   %.3f\n", setSignedStats.min)
	fmt.Printf("  max:   %.3f\n", setSignedStats.max)
	fmt.Printf("  mean:  %.3f\n", setSignedStats.mean())
}
