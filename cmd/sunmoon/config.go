package main

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	meeussunmoon "github.com/zyo00ody/MeeusSunMoon"
	"github.com/zyo00ody/MeeusSunMoon/internal/places"
)

// Styles shared by the text reports
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	moonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("228"))
)

// site is the resolved observing context shared by the subcommands.
type site struct {
	place places.Place
	where meeussunmoon.Coordinates
	zone  *time.Location
}

// engineConfig assembles the library options from flags, config file and
// environment, in that order of precedence.
func engineConfig() meeussunmoon.Config {
	return meeussunmoon.Config{
		RoundToNearestMinute: viper.GetBool("round"),
		ReturnPlaceholders:   viper.GetBool("placeholders"),
		MidnightSunMarker:    viper.GetString("midnight_sun_marker"),
		PolarNightMarker:     viper.GetString("polar_night_marker"),
	}
}

// resolveSite turns --place or --lat/--lon into a place, coordinates and
// zone. --tz overrides a catalog place's stored zone.
func resolveSite() (site, error) {
	var p places.Place

	if name := viper.GetString("place"); name != "" {
		catalog, path, err := loadCatalog()
		if err != nil {
			return site{}, err
		}
		found, ok := catalog.Find(name)
		if !ok {
			return site{}, fmt.Errorf("place %q is not in the catalog %s", name, path)
		}
		p = found
	} else {
		lat := viper.GetFloat64("lat")
		lon := viper.GetFloat64("lon")
		if lat == 0 && lon == 0 {
			log.Println("warning: lat=0 lon=0 (Gulf of Guinea). Use --lat/--lon or --place to set a real location.")
		}
		p = places.Place{
			Name: fmt.Sprintf("%.4f, %.4f", lat, lon),
			Lat:  lat,
			Lon:  lon,
		}
	}

	if tz := viper.GetString("tz"); tz != "" {
		p.Zone = tz
	}
	if err := p.Validate(); err != nil {
		return site{}, err
	}
	zone, err := p.Location()
	if err != nil {
		return site{}, err
	}

	return site{
		place: p,
		where: meeussunmoon.Coordinates{Lat: p.Lat, Lon: p.Lon},
		zone:  zone,
	}, nil
}

// resolveZone is resolveSite for commands that need only a zone.
func resolveZone() (*time.Location, error) {
	if tz := viper.GetString("tz"); tz != "" {
		zone, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("resolving zone %q: %w", tz, err)
		}
		return zone, nil
	}
	if viper.GetString("place") != "" {
		s, err := resolveSite()
		if err != nil {
			return nil, err
		}
		return s.zone, nil
	}
	return time.UTC, nil
}

// parseDate reads the --date flag as a calendar day in zone, defaulting to
// today.
func parseDate(cmd *cobra.Command, zone *time.Location) (time.Time, error) {
	s, _ := cmd.Flags().GetString("date")
	if s == "" {
		now := time.Now().In(zone)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, zone), nil
	}
	date, err := time.ParseInLocation("2006-01-02", s, zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q: %w", s, err)
	}
	return date, nil
}

// parseInstant reads the --time flag in a few common layouts, defaulting to
// now.
func parseInstant(cmd *cobra.Command, zone *time.Location) (time.Time, error) {
	s, _ := cmd.Flags().GetString("time")
	if s == "" {
		return time.Now().In(zone), nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
		"2006-01-02",
	}
	var t time.Time
	var err error
	for _, layout := range layouts {
		t, err = time.ParseInLocation(layout, s, zone)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse --time %q: %w", s, err)
}
