package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	meeussunmoon "github.com/zyo00ody/MeeusSunMoon"
)

var sunCmd = &cobra.Command{
	Use:   "sun",
	Short: "Sunrise, sunset, twilight and photography windows for a date",
	Long: `Computes the full solar day for one date and place: the three dawn and
dusk twilight boundaries, sunrise, solar noon, sunset, daylight duration,
and the golden and blue hour windows. On polar days events are classified
as midnight sun or polar night instead of carrying times.`,
	RunE: runSun,
}

func init() {
	sunCmd.Flags().String("date", "", "date as YYYY-MM-DD (default today)")
	sunCmd.Flags().Bool("json", false, "output as JSON")
	rootCmd.AddCommand(sunCmd)
}

// eventJSON is how a classified sun event serializes: polar outcomes have a
// class and, only with placeholders enabled, a time.
type eventJSON struct {
	Time  *time.Time `json:"time,omitempty"`
	Class string     `json:"class"`
}

func toEventJSON(ev meeussunmoon.SunEvent) eventJSON {
	out := eventJSON{Class: ev.Class.String()}
	if ev.HasTime() {
		t := ev.Time
		out.Time = &t
	}
	return out
}

type windowJSON struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func toWindowJSON(w meeussunmoon.Window) *windowJSON {
	return &windowJSON{Start: w.Start, End: w.End}
}

type sunReport struct {
	Place     string  `json:"place"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Timezone  string  `json:"timezone"`

	AstronomicalDawn eventJSON `json:"astronomical_dawn"`
	NauticalDawn     eventJSON `json:"nautical_dawn"`
	CivilDawn        eventJSON `json:"civil_dawn"`
	Sunrise          eventJSON `json:"sunrise"`
	SolarNoon        time.Time `json:"solar_noon"`
	Sunset           eventJSON `json:"sunset"`
	CivilDusk        eventJSON `json:"civil_dusk"`
	NauticalDusk     eventJSON `json:"nautical_dusk"`
	AstronomicalDusk eventJSON `json:"astronomical_dusk"`

	DaylightHours *float64 `json:"daylight_hours,omitempty"`

	GoldenHourMorning *windowJSON `json:"golden_hour_morning,omitempty"`
	GoldenHourEvening *windowJSON `json:"golden_hour_evening,omitempty"`
	BlueHourMorning   *windowJSON `json:"blue_hour_morning,omitempty"`
	BlueHourEvening   *windowJSON `json:"blue_hour_evening,omitempty"`
}

func runSun(cmd *cobra.Command, args []string) error {
	s, err := resolveSite()
	if err != nil {
		return err
	}
	date, err := parseDate(cmd, s.zone)
	if err != nil {
		return err
	}
	cfg := engineConfig()

	rise, err := meeussunmoon.Sunrise(date, s.where, cfg)
	if err != nil {
		return err
	}
	set, err := meeussunmoon.Sunset(date, s.where, cfg)
	if err != nil {
		return err
	}
	noon, err := meeussunmoon.SolarNoon(date, s.where.Lon, cfg)
	if err != nil {
		return err
	}

	report := sunReport{
		Place:     s.place.Name,
		Latitude:  s.where.Lat,
		Longitude: s.where.Lon,
		Date:      date.Format("2006-01-02"),
		Timezone:  s.zone.String(),
		Sunrise:   toEventJSON(rise),
		SolarNoon: noon,
		Sunset:    toEventJSON(set),
	}

	for _, tw := range []struct {
		kind       meeussunmoon.TwilightKind
		dawn, dusk *eventJSON
	}{
		{meeussunmoon.TwilightCivil, &report.CivilDawn, &report.CivilDusk},
		{meeussunmoon.TwilightNautical, &report.NauticalDawn, &report.NauticalDusk},
		{meeussunmoon.TwilightAstronomical, &report.AstronomicalDawn, &report.AstronomicalDusk},
	} {
		dawn, dusk, err := meeussunmoon.Twilight(date, s.where, tw.kind, cfg)
		if err != nil {
			return err
		}
		*tw.dawn = toEventJSON(dawn)
		*tw.dusk = toEventJSON(dusk)
	}

	if hours, err := meeussunmoon.DaylightHours(date, s.where); err == nil {
		report.DaylightHours = &hours
	} else if !errors.Is(err, meeussunmoon.ErrNoRiseNoSet) {
		return err
	}

	if golden, err := meeussunmoon.GoldenHour(date, s.where, cfg); err == nil {
		if golden.HasMorning {
			report.GoldenHourMorning = toWindowJSON(golden.Morning)
		}
		if golden.HasEvening {
			report.GoldenHourEvening = toWindowJSON(golden.Evening)
		}
	} else if !errors.Is(err, meeussunmoon.ErrNoRiseNoSet) {
		return err
	}
	if blue, err := meeussunmoon.BlueHour(date, s.where, cfg); err == nil {
		if blue.HasMorning {
			report.BlueHourMorning = toWindowJSON(blue.Morning)
		}
		if blue.HasEvening {
			report.BlueHourEvening = toWindowJSON(blue.Evening)
		}
	} else if !errors.Is(err, meeussunmoon.ErrNoRiseNoSet) {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}

	printSunReport(report, cfg)
	return nil
}

func printSunReport(r sunReport, cfg meeussunmoon.Config) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("Sun — %s — %s", r.Place, r.Date)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("lat %.4f  lon %.4f  zone %s", r.Latitude, r.Longitude, r.Timezone)))
	fmt.Println()

	row := func(label, value string) {
		fmt.Printf("  %s %s\n", labelStyle.Render(fmt.Sprintf("%-18s", label)), value)
	}
	event := func(label string, ev eventJSON) {
		value := markerFor(ev.Class, cfg)
		if ev.Time != nil {
			value = ev.Time.Format("15:04:05") + markerFor(ev.Class, cfg)
		}
		row(label, value)
	}

	event("Astronomical dawn", r.AstronomicalDawn)
	event("Nautical dawn", r.NauticalDawn)
	event("Civil dawn", r.CivilDawn)
	event("Sunrise", r.Sunrise)
	row("Solar noon", r.SolarNoon.Format("15:04:05"))
	event("Sunset", r.Sunset)
	event("Civil dusk", r.CivilDusk)
	event("Nautical dusk", r.NauticalDusk)
	event("Astronomical dusk", r.AstronomicalDusk)

	fmt.Println()
	if r.DaylightHours != nil {
		row("Daylight", fmt.Sprintf("%.1f hours", *r.DaylightHours))
	} else {
		row("Daylight", "—")
	}

	window := func(label string, w *windowJSON) {
		if w == nil {
			return
		}
		row(label, fmt.Sprintf("%s – %s", w.Start.Format("15:04"), w.End.Format("15:04")))
	}
	window("Golden hour (am)", r.GoldenHourMorning)
	window("Golden hour (pm)", r.GoldenHourEvening)
	window("Blue hour (am)", r.BlueHourMorning)
	window("Blue hour (pm)", r.BlueHourEvening)
}

// markerFor mirrors SunEvent.Format for the already-serialized report rows.
func markerFor(class string, cfg meeussunmoon.Config) string {
	switch class {
	case meeussunmoon.MidnightSun.String():
		return cfg.MidnightSunMarker
	case meeussunmoon.PolarNight.String():
		return cfg.PolarNightMarker
	}
	return ""
}
