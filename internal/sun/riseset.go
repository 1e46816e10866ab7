package sun

import (
	"math"
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// StandardAltitude is the depression of the sun's center below the horizon
// at rise and set, in degrees: 50 arcminutes, covering mean refraction plus
// the solar semidiameter.
const StandardAltitude = 50.0 / 60.0

// The hour-angle solver refines the first-guess day fraction with at most
// maxRefinements correction steps, stopping early once a step drops to
// convergence (in day fractions; 0.0001 is about 8.6 seconds).
const (
	maxRefinements = 3
	convergence    = 0.0001
)

// Classification tags the outcome of a rise or set computation at some
// target altitude.
type Classification int

const (
	// Occurs means the sun crosses the target altitude and a time exists.
	Occurs Classification = iota
	// AboveHorizonAllDay means the sun never goes down to the target
	// altitude on that date (midnight sun, when the target is the horizon).
	AboveHorizonAllDay
	// BelowHorizonAllDay means the sun never comes up to the target
	// altitude on that date (polar night, when the target is the horizon).
	BelowHorizonAllDay
)

// Rise returns the UTC instant at which the sun's center ascends through
// offset degrees below the horizon on date's calendar day. The calendar day
// is read in date's zone; latitude is north-positive, longitude
// east-positive. A non-Occurs classification comes back with a zero time.
func Rise(date time.Time, lat, lon, offset float64) (time.Time, Classification, error) {
	return riseSet(date, lat, lon, offset, true)
}

// Set is Rise for the descending crossing.
func Set(date time.Time, lat, lon, offset float64) (time.Time, Classification, error) {
	return riseSet(date, lat, lon, offset, false)
}

// Transit returns the UTC instant of local solar noon on date's calendar day
// at the given east-positive longitude.
func Transit(date time.Time, lon float64) (time.Time, error) {
	base, offsetMin := utcAnchor(date)
	deltaT, err := timeutil.DeltaT(base.Year(), base.Month())
	if err != nil {
		return time.Time{}, err
	}

	T := timeutil.JulianCenturies(base)
	theta0 := ApparentSiderealTime(T)
	TD := T + deltaT/(3600*24*36525)
	alpha := ApparentRightAscension(TD)

	m := normalizeM((alpha-lon-theta0)/360, offsetMin)
	m += transitCorrection(T, theta0, deltaT, lon, m)

	return timeOfDayFraction(base, m), nil
}

func riseSet(date time.Time, lat, lon, offset float64, rise bool) (time.Time, Classification, error) {
	base, offsetMin := utcAnchor(date)
	deltaT, err := timeutil.DeltaT(base.Year(), base.Month())
	if err != nil {
		return time.Time{}, Occurs, err
	}

	T := timeutil.JulianCenturies(base)
	theta0 := ApparentSiderealTime(T)
	TD := T + deltaT/(3600*24*36525)
	alpha := ApparentRightAscension(TD)
	delta := ApparentDeclination(TD)

	// cos H0 beyond [-1, 1] means the target altitude is never crossed.
	cosH0 := (timeutil.SinD(-offset) - timeutil.SinD(lat)*timeutil.SinD(delta)) /
		(timeutil.CosD(lat) * timeutil.CosD(delta))
	switch {
	case cosH0 < -1:
		return time.Time{}, AboveHorizonAllDay, nil
	case cosH0 > 1:
		return time.Time{}, BelowHorizonAllDay, nil
	}
	H0 := timeutil.Rad2Deg(math.Acos(cosH0))

	m := normalizeM((alpha-lon-theta0)/360, offsetMin)
	if rise {
		m -= H0 / 360
	} else {
		m += H0 / 360
	}

	dm := 1.0
	for i := 0; math.Abs(dm) > convergence && i < maxRefinements; i++ {
		dm = riseSetCorrection(T, theta0, deltaT, lat, lon, offset, m)
		m += dm
	}

	return timeOfDayFraction(base, m), Occurs, nil
}

// utcAnchor returns 0h UTC carrying date's calendar day, plus date's UTC
// offset in minutes. All day fractions the solver works with count from this
// anchor.
func utcAnchor(date time.Time) (time.Time, int) {
	y, m, d := date.Date()
	_, off := date.Zone()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), off / 60
}

// normalizeM pulls an event's day fraction onto the intended local calendar
// day: if the local-time equivalent falls before local midnight the event
// shifts a day forward, past the next local midnight a day back.
func normalizeM(m float64, utcOffsetMin int) float64 {
	local := m + float64(utcOffsetMin)/1440
	if local < 0 {
		return m + 1
	}
	if local > 1 {
		return m - 1
	}
	return m
}

// timeOfDayFraction resolves a day fraction against the anchor, rounding the
// magnitude to whole seconds away from the anchor.
func timeOfDayFraction(base time.Time, m float64) time.Time {
	if m > 0 {
		return base.Add(time.Duration(math.Floor(m*86400+0.5)) * time.Second)
	}
	return base.Add(-time.Duration(math.Floor(-m*86400+0.5)) * time.Second)
}

func transitCorrection(T, theta0, deltaT, lon, m float64) float64 {
	st := theta0 + 360.985647*m
	n := m + deltaT/86400
	alpha := interpolatedRightAscension(T, n)
	return -localHourAngle(st, lon, alpha) / 360
}

func riseSetCorrection(T, theta0, deltaT, lat, lon, offset, m float64) float64 {
	st := theta0 + 360.985647*m
	n := m + deltaT/86400
	alpha := interpolatedRightAscension(T, n)
	delta := interpolatedDeclination(T, n)
	H := localHourAngle(st, lon, alpha)
	h := altitudeAt(lat, delta, H)
	return (h + offset) /
		(360 * timeutil.CosD(delta) * timeutil.CosD(lat) * timeutil.SinD(H))
}

// localHourAngle reduces θ + L − α into (-180, 180].
func localHourAngle(st, lon, alpha float64) float64 {
	H := timeutil.Normalize360(st + lon - alpha)
	if H > 180 {
		H -= 360
	}
	return H
}

// altitudeAt is the sun's altitude in degrees at hour angle H for an
// observer at latitude lat, given declination delta.
func altitudeAt(lat, delta, H float64) float64 {
	return timeutil.Rad2Deg(math.Asin(
		timeutil.SinD(lat)*timeutil.SinD(delta) +
			timeutil.CosD(lat)*timeutil.CosD(delta)*timeutil.CosD(H)))
}

// interpolatedRightAscension evaluates α at day fraction n by a quadratic
// through the values one day either side of the anchor. Right ascension
// needs the wrap-aware difference handling; the result is reduced.
func interpolatedRightAscension(T, n float64) float64 {
	a1 := ApparentRightAscension(T - 1.0/36525)
	a2 := ApparentRightAscension(T)
	a3 := ApparentRightAscension(T + 1.0/36525)
	return timeutil.Normalize360(interpolateThree(a1, a2, a3, n, true))
}

// interpolatedDeclination is the declination counterpart. No unwrapping:
// declination lives in [-90, 90] and never jumps across a turn boundary.
func interpolatedDeclination(T, n float64) float64 {
	d1 := ApparentDeclination(T - 1.0/36525)
	d2 := ApparentDeclination(T)
	d3 := ApparentDeclination(T + 1.0/36525)
	return interpolateThree(d1, d2, d3, n, false)
}

// interpolateThree fits a parabola through three equally spaced samples and
// evaluates it n steps from the middle one. With unwrap set, negative
// first differences are lifted by a full turn, which undoes a 360°→0°
// crossing between samples.
func interpolateThree(y1, y2, y3, n float64, unwrap bool) float64 {
	a := y2 - y1
	b := y3 - y2
	if unwrap {
		if a < 0 {
			a += 360
		}
		if b < 0 {
			b += 360
		}
	}
	c := b - a
	return y2 + (n/2)*(a+b+n*c)
}
