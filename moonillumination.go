package meeussunmoon

import (
	"math"
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/moon"
	"github.com/zyo00ody/MeeusSunMoon/internal/sun"
	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// Illumination describes the moon's illuminated fraction and qualitative
// phase at an instant. Phase is a global property, independent of observer
// location, so there is no Coordinates argument; the computation runs in UTC
// and the caller's instant is echoed back.
type Illumination struct {
	Time       time.Time
	Fraction   float64 // illuminated fraction of the disk, 0 new to 1 full
	Elongation float64 // angular sun-moon separation, degrees, 0..180
	Waxing     bool
	Name       string // "New Moon", "Waxing Crescent", ...
}

// MoonIlluminationAt computes the moon's illumination at t from the angular
// separation of the sun and the moon.
func MoonIlluminationAt(t time.Time) Illumination {
	utc := t.UTC()
	T := timeutil.JulianCenturies(utc)

	raMoon, decMoon := moon.Position(utc)
	raSun := sun.ApparentRightAscension(T)
	decSun := sun.ApparentDeclination(T)

	// Angular separation ψ between sun and moon:
	// cos ψ = sin δs sin δm + cos δs cos δm cos(αs - αm)
	cosPsi := timeutil.SinD(decSun)*timeutil.SinD(decMoon) +
		timeutil.CosD(decSun)*timeutil.CosD(decMoon)*timeutil.CosD(raSun-raMoon)

	// Clamp to handle numerical noise
	if cosPsi > 1 {
		cosPsi = 1
	} else if cosPsi < -1 {
		cosPsi = -1
	}

	// Treating the elongation as the phase angle ignores the finite
	// sun-moon-earth distances, which costs under a percent of fraction.
	fraction := 0.5 * (1 - cosPsi)
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	// Waxing vs waning: which side of the sun is the moon on?
	waxing := timeutil.Normalize360(raMoon-raSun) < 180.0

	return Illumination{
		Time:       t,
		Fraction:   fraction,
		Elongation: timeutil.Rad2Deg(math.Acos(cosPsi)),
		Waxing:     waxing,
		Name:       classifyPhaseName(fraction, waxing),
	}
}

func classifyPhaseName(f float64, waxing bool) string {
	const (
		eps        = 0.01 // near 0 or 1
		quarterTol = 0.05 // fraction window around 0.5
	)

	switch {
	case f < eps:
		return "New Moon"
	case f > 1-eps:
		return "Full Moon"
	case math.Abs(f-0.5) < quarterTol:
		if waxing {
			return "First Quarter"
		}
		return "Last Quarter"
	case f < 0.5:
		if waxing {
			return "Waxing Crescent"
		}
		return "Waning Crescent"
	default:
		if waxing {
			return "Waxing Gibbous"
		}
		return "Waning Gibbous"
	}
}
