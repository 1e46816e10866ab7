package meeussunmoon

import (
	"fmt"
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/sun"
	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// TwilightKind selects which twilight boundary Twilight computes.
type TwilightKind int

const (
	// TwilightCivil is the sun 6° below the horizon.
	TwilightCivil TwilightKind = iota
	// TwilightNautical is the sun 12° below the horizon.
	TwilightNautical
	// TwilightAstronomical is the sun 18° below the horizon.
	TwilightAstronomical
)

// Sunrise returns the sunrise on date's calendar day at where, in date's
// zone. A midnight-sun or polar-night day comes back as a classified event
// rather than an error; see SunEvent.
func Sunrise(date time.Time, where Coordinates, cfg Config) (SunEvent, error) {
	utc, class, err := sun.Rise(date, where.Lat, where.Lon, sun.StandardAltitude)
	if err != nil {
		return SunEvent{}, err
	}
	return newSunEvent(date, utc, class, 6, cfg), nil
}

// Sunset is Sunrise for the evening crossing.
func Sunset(date time.Time, where Coordinates, cfg Config) (SunEvent, error) {
	utc, class, err := sun.Set(date, where.Lat, where.Lon, sun.StandardAltitude)
	if err != nil {
		return SunEvent{}, err
	}
	return newSunEvent(date, utc, class, 18, cfg), nil
}

// SolarNoon returns the sun's transit of the local meridian on date's
// calendar day, in date's zone. Only the longitude matters: transit time
// does not depend on latitude, and it always exists.
func SolarNoon(date time.Time, longitude float64, cfg Config) (time.Time, error) {
	utc, err := sun.Transit(date, longitude)
	if err != nil {
		return time.Time{}, err
	}
	t := utc.In(date.Location())
	if cfg.RoundToNearestMinute {
		t = timeutil.RoundToMinute(t)
	}
	return t, nil
}

// Twilight returns the dawn and dusk crossings of the given twilight
// boundary on date's calendar day. Polar classification works exactly as for
// Sunrise and Sunset, judged against the twilight altitude rather than the
// horizon: dawn placeholders sit at 06:00, dusk placeholders at 18:00.
func Twilight(date time.Time, where Coordinates, kind TwilightKind, cfg Config) (dawn, dusk SunEvent, err error) {
	var offset float64
	switch kind {
	case TwilightCivil:
		offset = 6
	case TwilightNautical:
		offset = 12
	case TwilightAstronomical:
		offset = 18
	default:
		return SunEvent{}, SunEvent{}, fmt.Errorf("unknown TwilightKind: %d", kind)
	}

	riseUTC, riseClass, err := sun.Rise(date, where.Lat, where.Lon, offset)
	if err != nil {
		return SunEvent{}, SunEvent{}, err
	}
	setUTC, setClass, err := sun.Set(date, where.Lat, where.Lon, offset)
	if err != nil {
		return SunEvent{}, SunEvent{}, err
	}
	return newSunEvent(date, riseUTC, riseClass, 6, cfg),
		newSunEvent(date, setUTC, setClass, 18, cfg), nil
}

// DaylightHours returns the hours between sunrise and sunset on date's
// calendar day: 24 under midnight sun, 0 in polar night. ErrNoRiseNoSet
// guards the remaining combinations, where no daylight figure would be
// meaningful.
func DaylightHours(date time.Time, where Coordinates) (float64, error) {
	rise, err := Sunrise(date, where, Config{})
	if err != nil {
		return 0, err
	}
	set, err := Sunset(date, where, Config{})
	if err != nil {
		return 0, err
	}

	switch {
	case rise.Class == NormalEvent && set.Class == NormalEvent:
		return set.Time.Sub(rise.Time).Hours(), nil
	case rise.Class == MidnightSun && set.Class == MidnightSun:
		return 24, nil
	case rise.Class == PolarNight && set.Class == PolarNight:
		return 0, nil
	}
	return 0, ErrNoRiseNoSet
}
