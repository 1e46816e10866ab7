package moon

import (
	"math"
	"testing"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/moonphase"
	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// Worked example: the new moon of 1977 February, lunation k = -283,
// JDE 2443192.65118 (1977-02-18 03:37:42 TD).
func TestTruePhaseNewMoon1977(t *testing.T) {
	got := truePhase(-283, 0)
	if math.Abs(got-2443192.65118) > 0.00005 {
		t.Errorf("truePhase(-283, new) = %.5f, want 2443192.65118", got)
	}
}

// Worked example: the last quarter of 2044 January, k = 544.75,
// JDE 2467636.49186 (2044-01-21 23:48:17 TD).
func TestTruePhaseLastQuarter2044(t *testing.T) {
	got := truePhase(544.75, 3)
	if math.Abs(got-2467636.49186) > 0.0001 {
		t.Errorf("truePhase(544.75, last quarter) = %.5f, want 2467636.49186", got)
	}
}

func TestApproxK(t *testing.T) {
	// Early 1977 sits near lunation -283, the worked example above.
	if k := approxK(1977, time.February, 15); math.Abs(k-(-282.87)) > 0.1 {
		t.Errorf("approxK(1977-02-15) = %.2f, want about -282.87", k)
	}
	// The lunation origin: the first new moon of 2000 falls on January 6.
	if k := approxK(2000, time.January, 6); math.Abs(k) > 0.2 {
		t.Errorf("approxK(2000-01-06) = %.2f, want about 0", k)
	}
}

// Instants published by almanac offices, UTC, for spot checks across phases
// and decades. The series is good to well under a minute here.
func TestPhasesForYearKnownInstants(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		phase int
		want  time.Time
	}{
		{"new moon 2000-01-06", 2000, 0, time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)},
		{"full moon 2000-01-21", 2000, 2, time.Date(2000, time.January, 21, 4, 41, 0, 0, time.UTC)},
		{"full moon 2025-01-13", 2025, 2, time.Date(2025, time.January, 13, 22, 27, 0, 0, time.UTC)},
		{"new moon 2025-01-29", 2025, 0, time.Date(2025, time.January, 29, 12, 36, 0, 0, time.UTC)},
		{"first quarter 2024-06-14", 2024, 1, time.Date(2024, time.June, 14, 5, 18, 0, 0, time.UTC)},
		{"last quarter 2024-06-28", 2024, 3, time.Date(2024, time.June, 28, 21, 53, 0, 0, time.UTC)},
	}
	const tolerance = 5 * time.Minute
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PhasesForYear(tc.year, tc.phase, time.UTC, false)
			if err != nil {
				t.Fatal(err)
			}
			best := closestTo(got, tc.want)
			if diff := best.Sub(tc.want); diff < -tolerance || diff > tolerance {
				t.Errorf("closest event %v, want %v (off by %v)", best, tc.want, diff)
			}
		})
	}
}

func closestTo(times []time.Time, target time.Time) time.Time {
	var best time.Time
	bestDiff := time.Duration(math.MaxInt64)
	for _, c := range times {
		diff := c.Sub(target)
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			bestDiff = diff
			best = c
		}
	}
	return best
}

// Every year yields 12 or 13 of each phase, strictly ordered, spaced by one
// synodic month within its known wobble.
func TestPhasesForYearStructure(t *testing.T) {
	for year := 1900; year <= 2100; year += 13 {
		for phase := 0; phase < 4; phase++ {
			events, err := PhasesForYear(year, phase, time.UTC, false)
			if err != nil {
				t.Fatal(err)
			}
			if len(events) != 12 && len(events) != 13 {
				t.Errorf("year %d phase %d: %d events, want 12 or 13", year, phase, len(events))
			}
			for i := range events {
				if events[i].Year() != year {
					t.Errorf("year %d phase %d: event %v outside the year", year, phase, events[i])
				}
				if i == 0 {
					continue
				}
				gap := events[i].Sub(events[i-1]).Hours() / 24
				if gap < 29.2 || gap > 29.9 {
					t.Errorf("year %d phase %d: gap %.3f days between %v and %v",
						year, phase, gap, events[i-1], events[i])
				}
			}
		}
	}
}

// The year filter works on the calendar year of the requested zone. The new
// moon of 2014-01-01 11:14 UTC is still 2013-12-31 in UTC-12, so it must
// move between years when the zone does.
func TestPhasesForYearZoneBoundary(t *testing.T) {
	west := time.FixedZone("UTC-12", -12*3600)

	utc2014, err := PhasesForYear(2014, 0, time.UTC, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(utc2014) != 13 {
		t.Fatalf("2014 UTC new moons = %d, want 13", len(utc2014))
	}
	first := utc2014[0]
	if first.Month() != time.January || first.Day() != 1 {
		t.Fatalf("first 2014 new moon = %v, want January 1", first)
	}

	west2014, err := PhasesForYear(2014, 0, west, false)
	if err != nil {
		t.Fatal(err)
	}
	if west2014[0].In(time.UTC).Day() == 1 && west2014[0].In(time.UTC).Month() == time.January {
		t.Errorf("UTC-12 2014 list still starts with the January 1 event: %v", west2014[0])
	}

	west2013, err := PhasesForYear(2013, 0, west, false)
	if err != nil {
		t.Fatal(err)
	}
	last := west2013[len(west2013)-1]
	if got := last.In(time.UTC); got.Year() != 2014 || got.Month() != time.January || got.Day() != 1 {
		t.Errorf("last UTC-12 2013 new moon = %v (UTC), want the January 1 UTC instant", got)
	}

	// Zone must not change the instants themselves, only the filtering.
	for _, w := range west2014 {
		found := false
		for _, u := range utc2014 {
			if w.Equal(u) {
				found = true
				break
			}
		}
		if !found && w.In(time.UTC).Year() == 2014 {
			t.Errorf("event %v present in UTC-12 list but missing from UTC list", w)
		}
	}
}

func TestPhasesForYearRounding(t *testing.T) {
	exact, err := PhasesForYear(2024, 2, time.UTC, false)
	if err != nil {
		t.Fatal(err)
	}
	rounded, err := PhasesForYear(2024, 2, time.UTC, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(exact) != len(rounded) {
		t.Fatalf("rounding changed the event count: %d vs %d", len(exact), len(rounded))
	}
	for i, r := range rounded {
		if r.Second() != 0 || r.Nanosecond() != 0 {
			t.Errorf("rounded event %v has nonzero seconds", r)
		}
		diff := r.Sub(exact[i])
		if diff < -30*time.Second || diff > 30*time.Second {
			t.Errorf("rounded event %v strays %v from exact %v", r, diff, exact[i])
		}
	}
}

// Cross-check against an independent implementation of the same phase
// series. The reference takes a decimal year and returns the dynamical-time
// JDE of the nearest new moon; feeding it the decimal year of each of our
// events pins both to the same lunation.
func TestPhasesForYearAgainstReference(t *testing.T) {
	for _, year := range []int{1950, 1999, 2026, 2077} {
		events, err := PhasesForYear(year, 0, time.UTC, false)
		if err != nil {
			t.Fatal(err)
		}
		for _, ev := range events {
			decimal := float64(year) + float64(ev.YearDay()-1)/365.25
			refJDE := moonphase.New(decimal)

			refUT := timeutil.TimeFromJulianDay(refJDE)
			deltaT, err := timeutil.DeltaT(refUT.Year(), refUT.Month())
			if err != nil {
				t.Fatal(err)
			}
			refUT = refUT.Add(-time.Duration(math.Round(deltaT)) * time.Second)

			if diff := ev.Sub(refUT); diff < -2*time.Minute || diff > 2*time.Minute {
				t.Errorf("year %d: new moon %v vs reference %v (off by %v)",
					year, ev, refUT, diff)
			}
		}
	}
}
