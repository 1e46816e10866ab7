package timeutil

import (
	"math"
	"time"
)

// gregorianStart is the first instant reckoned in the Gregorian calendar:
// noon UTC on 1582-10-15. Everything earlier follows Julian calendar rules,
// with no century leap-year correction.
var gregorianStart = time.Date(1582, time.October, 15, 12, 0, 0, 0, time.UTC)

// JulianDay converts an instant to its Julian Date, the continuous day count
// from 4712 BC used by every series in this module. Calendar fields are read
// in UTC; the fractional day carries hours down to nanoseconds.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	// The Gregorian correction only exists for instants at or after the
	// calendar reform; before it, dates are Julian and B stays zero.
	B := 0
	if !u.Before(gregorianStart) {
		A := y / 100
		B = 2 - A + A/4
	}

	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0
}

// TimeFromJulianDay converts a Julian Date back to a UTC instant.
//
// Sub-second precision is floored away, and the Julian/Gregorian switch is
// decided by the day count alone, so instants inside the morning of the
// reform day (1582-10-15 before noon UTC) do not round-trip exactly. Nothing
// downstream asks for times in that window.
func TimeFromJulianDay(jd float64) time.Time {
	jd += 0.5
	z := math.Floor(jd)
	f := jd - z

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}

	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	dayFrac := b - d - math.Floor(30.6001*e) + f
	day := math.Floor(dayFrac)

	hourFrac := (dayFrac - day) * 24
	hour := math.Floor(hourFrac)
	minuteFrac := (hourFrac - hour) * 60
	minute := math.Floor(minuteFrac)
	second := math.Floor((minuteFrac - minute) * 60)

	month := int(e) - 1
	if e >= 14 {
		month = int(e) - 13
	}
	year := int(c) - 4716
	if month <= 2 {
		year = int(c) - 4715
	}

	return time.Date(year, time.Month(month), int(day),
		int(hour), int(minute), int(second), 0, time.UTC)
}

// JulianCenturies returns fractional Julian centuries between t and the
// J2000.0 epoch. This is the T that parameterizes all the longitude,
// nutation and sidereal series.
func JulianCenturies(t time.Time) float64 {
	return JulianCenturiesFromJD(JulianDay(t))
}

// JulianCenturiesFromJD is JulianCenturies for an already-computed Julian Date.
func JulianCenturiesFromJD(jd float64) float64 {
	return (jd - 2451545.0) / 36525.0
}
