package meeussunmoon

import (
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/sun"
	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// Window is a continuous interval during which the sun's altitude stays
// inside a particular band, such as the golden hour or the blue hour.
type Window struct {
	Start time.Time
	End   time.Time
}

// DaylightWindows holds the morning and evening occurrences of an altitude
// band on one calendar day. At high latitudes either side can be missing:
// the sun may never enter the band, or never leave it, on a given date.
type DaylightWindows struct {
	// Morning is the interval around dawn, sun climbing through the band.
	Morning Window
	// Evening is the interval around dusk, sun descending through it.
	Evening Window

	HasMorning bool
	HasEvening bool
}

// GoldenHour returns the intervals on date's calendar day during which the
// sun's center sits between -4° and +6° of altitude, the usual photographic
// definition. Morning runs from the upward -4° crossing to the upward +6°
// crossing; evening from the downward +6° crossing to the downward -4° one.
//
// If neither window exists, ErrNoRiseNoSet is returned.
func GoldenHour(date time.Time, where Coordinates, cfg Config) (DaylightWindows, error) {
	return altitudeBand(date, where, -4, 6, cfg)
}

// BlueHour returns the intervals on date's calendar day during which the
// sun's center sits between -6° and -4° of altitude: after civil dawn
// begins and before sunrise approaches, and the mirror of that at dusk.
//
// If neither window exists, ErrNoRiseNoSet is returned.
func BlueHour(date time.Time, where Coordinates, cfg Config) (DaylightWindows, error) {
	return altitudeBand(date, where, -6, -4, cfg)
}

// altitudeBand finds the morning and evening passages through the altitude
// band [lowerAlt, upperAlt]. The solver works in degrees below the horizon,
// so altitudes are negated on the way in.
func altitudeBand(date time.Time, where Coordinates, lowerAlt, upperAlt float64, cfg Config) (DaylightWindows, error) {
	riseLower, classRiseLower, err := sun.Rise(date, where.Lat, where.Lon, -lowerAlt)
	if err != nil {
		return DaylightWindows{}, err
	}
	riseUpper, classRiseUpper, err := sun.Rise(date, where.Lat, where.Lon, -upperAlt)
	if err != nil {
		return DaylightWindows{}, err
	}
	setUpper, classSetUpper, err := sun.Set(date, where.Lat, where.Lon, -upperAlt)
	if err != nil {
		return DaylightWindows{}, err
	}
	setLower, classSetLower, err := sun.Set(date, where.Lat, where.Lon, -lowerAlt)
	if err != nil {
		return DaylightWindows{}, err
	}

	var w DaylightWindows

	// Morning: sun climbing from lowerAlt up through upperAlt.
	if classRiseLower == sun.Occurs && classRiseUpper == sun.Occurs {
		start := windowTime(riseLower, date, cfg)
		end := windowTime(riseUpper, date, cfg)
		if end.After(start) {
			w.Morning = Window{Start: start, End: end}
			w.HasMorning = true
		}
	}

	// Evening: sun descending from upperAlt down through lowerAlt.
	if classSetUpper == sun.Occurs && classSetLower == sun.Occurs {
		start := windowTime(setUpper, date, cfg)
		end := windowTime(setLower, date, cfg)
		if end.After(start) {
			w.Evening = Window{Start: start, End: end}
			w.HasEvening = true
		}
	}

	if !w.HasMorning && !w.HasEvening {
		return DaylightWindows{}, ErrNoRiseNoSet
	}
	return w, nil
}

func windowTime(utc time.Time, date time.Time, cfg Config) time.Time {
	t := utc.In(date.Location())
	if cfg.RoundToNearestMinute {
		t = timeutil.RoundToMinute(t)
	}
	return t
}
