package sun

import (
	"math"

	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// The apparent-place pipeline: mean longitude and anomaly, equation of
// center, nutation and aberration corrections, obliquity, then equatorial
// coordinates and sidereal time. Everything takes Julian centuries T since
// J2000.0 and works in degrees. Good to about a hundredth of a degree, which
// keeps event times within a minute or so.

// MeanLongitude returns the sun's geometric mean longitude L0 in degrees,
// reduced to [0, 360).
func MeanLongitude(T float64) float64 {
	return timeutil.Normalize360(280.46646 + 36000.76983*T + 0.0003032*T*T)
}

// MeanAnomaly returns the sun's mean anomaly M in degrees, reduced to [0, 360).
func MeanAnomaly(T float64) float64 {
	return timeutil.Normalize360(357.52911 + 35999.05029*T - 0.0001537*T*T)
}

// equationOfCenter is the correction C from mean to true anomaly, degrees.
func equationOfCenter(T float64) float64 {
	m := MeanAnomaly(T)
	return (1.914602-0.004817*T-0.000014*T*T)*timeutil.SinD(m) +
		(0.019993-0.000101*T)*timeutil.SinD(2*m) +
		0.000289*timeutil.SinD(3*m)
}

// TrueLongitude returns the sun's true geometric longitude L0 + C in degrees.
// Deliberately not reduced: ApparentLongitude subtracts small corrections and
// reduction happens where a caller needs it.
func TrueLongitude(T float64) float64 {
	return MeanLongitude(T) + equationOfCenter(T)
}

// ApparentLongitude returns λ in degrees: the true longitude shifted by
// aberration and by the nutation-in-longitude proxy term in Ω.
func ApparentLongitude(T float64) float64 {
	return TrueLongitude(T) - 0.00569 - 0.00478*timeutil.SinD(ascendingNodeLongitude(T))
}

// MeanObliquity returns ε0 in degrees from the Laskar polynomial in
// U = T/100, valid over ten millennia around J2000.
func MeanObliquity(T float64) float64 {
	u := T / 100
	return timeutil.Polynomial(u,
		84381.448, -4680.93, -1.55, 1999.25, -51.38, -249.67,
		-39.05, 7.12, 27.87, 5.79, 2.45) / 3600
}

// TrueObliquity returns ε = ε0 + Δε in degrees.
func TrueObliquity(T float64) float64 {
	return MeanObliquity(T) + NutationInObliquity(T)
}

// apparentObliquity is the obliquity used for the sun's apparent place: the
// true obliquity plus the 0.00256·cos Ω companion of the aberration term.
func apparentObliquity(T float64) float64 {
	return TrueObliquity(T) + 0.00256*timeutil.CosD(ascendingNodeLongitude(T))
}

// ApparentRightAscension returns the sun's apparent right ascension α in
// degrees, reduced to [0, 360).
func ApparentRightAscension(T float64) float64 {
	eps := apparentObliquity(T)
	lambda := ApparentLongitude(T)
	alpha := timeutil.Rad2Deg(math.Atan2(
		timeutil.CosD(eps)*timeutil.SinD(lambda), timeutil.CosD(lambda)))
	return timeutil.Normalize360(alpha)
}

// ApparentDeclination returns the sun's apparent declination δ in degrees.
func ApparentDeclination(T float64) float64 {
	eps := apparentObliquity(T)
	lambda := ApparentLongitude(T)
	return timeutil.Rad2Deg(math.Asin(timeutil.SinD(eps) * timeutil.SinD(lambda)))
}

// MeanSiderealTime returns the mean sidereal time at Greenwich in degrees at
// T. Unreduced, because the daily rate term is huge and callers add the
// nutation correction before reducing.
func MeanSiderealTime(T float64) float64 {
	days := T * 36525
	return 280.46061837 + 360.98564736629*days + 0.000387933*T*T - T*T*T/38710000
}

// ApparentSiderealTime returns Θ0 in degrees, reduced to [0, 360): the mean
// sidereal time corrected by the equation of the equinoxes.
func ApparentSiderealTime(T float64) float64 {
	return timeutil.Normalize360(
		MeanSiderealTime(T) + NutationInLongitude(T)*timeutil.CosD(TrueObliquity(T)))
}
