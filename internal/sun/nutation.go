package sun

import "github.com/zyo00ody/MeeusSunMoon/internal/timeutil"

// Fundamental arguments of the nutation series, degrees, as cubic fits in
// Julian centuries T. Each is reduced to [0,360) before entering the sums.

func moonMeanElongation(T float64) float64 {
	return timeutil.Normalize360(297.85036 + 445267.111480*T - 0.0019142*T*T + T*T*T/189474)
}

func sunMeanAnomalyNutation(T float64) float64 {
	return timeutil.Normalize360(357.52772 + 35999.050340*T - 0.0001603*T*T - T*T*T/300000)
}

func moonMeanAnomaly(T float64) float64 {
	return timeutil.Normalize360(134.96298 + 477198.867398*T + 0.0086972*T*T + T*T*T/56250)
}

func moonArgumentOfLatitude(T float64) float64 {
	return timeutil.Normalize360(93.27191 + 483202.017538*T - 0.0036825*T*T + T*T*T/327270)
}

// ascendingNodeLongitude is the longitude of the moon's ascending node. Both
// nutation sums and the solar aberration correction use this same fit.
func ascendingNodeLongitude(T float64) float64 {
	return timeutil.Normalize360(125.04452 - 1934.136261*T + 0.0020708*T*T + T*T*T/450000)
}

// nutationTerm is one row of the IAU 1980 series: integer multipliers of the
// five fundamental arguments, then the sine coefficients for Δψ and the
// cosine coefficients for Δε in units of 0.0001″ (the first of each pair
// constant, the second per Julian century).
type nutationTerm struct {
	d, m, mp, f, om        int
	sin0, sin1, cos0, cos1 float64
}

// nutationSeries is data, not logic: all 63 published rows, reproduced
// verbatim so the sums agree with the reference values to the last digit.
var nutationSeries = [63]nutationTerm{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
	{2, 0, 0, 0, 0, 63, 0, 0, 0},
	{0, 0, 1, 0, 1, 63, 0.1, -33, 0},
	{2, 0, -1, 2, 2, -59, 0, 26, 0},
	{0, 0, -1, 0, 1, -58, -0.1, 32, 0},
	{0, 0, 1, 2, 1, -51, 0, 27, 0},
	{-2, 0, 2, 0, 0, 48, 0, 0, 0},
	{0, 0, -2, 2, 1, 46, 0, -24, 0},
	{2, 0, 0, 2, 2, -38, 0, 16, 0},
	{0, 0, 2, 2, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 29, 0, 0, 0},
	{-2, 0, 1, 2, 2, 29, 0, -12, 0},
	{0, 0, 0, 2, 0, 26, 0, 0, 0},
	{-2, 0, 0, 2, 0, -22, 0, 0, 0},
	{0, 0, -1, 2, 1, 21, 0, -10, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{2, 0, -1, 0, 1, 16, 0, -8, 0},
	{-2, 2, 0, 2, 2, -16, 0.1, 7, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{-2, 0, 1, 0, 1, -13, 0, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{0, 0, 2, -2, 0, 11, 0, 0, 0},
	{2, 0, -1, 2, 1, -10, 0, 5, 0},
	{2, 0, 1, 2, 2, -8, 0, 3, 0},
	{0, 1, 0, 2, 2, 7, 0, -3, 0},
	{-2, 1, 1, 0, 0, -7, 0, 0, 0},
	{0, -1, 0, 2, 2, -7, 0, 3, 0},
	{2, 0, 0, 2, 1, -7, 0, 3, 0},
	{2, 0, 1, 0, 0, 6, 0, 0, 0},
	{-2, 0, 2, 2, 2, 6, 0, -3, 0},
	{-2, 0, 1, 2, 1, 6, 0, -3, 0},
	{2, 0, -2, 0, 1, -6, 0, 3, 0},
	{2, 0, 0, 0, 1, -6, 0, 3, 0},
	{0, -1, 1, 0, 0, 5, 0, 0, 0},
	{-2, -1, 0, 2, 1, -5, 0, 3, 0},
	{-2, 0, 0, 0, 1, -5, 0, 3, 0},
	{0, 0, 2, 2, 1, -5, 0, 3, 0},
	{-2, 0, 2, 0, 1, 4, 0, 0, 0},
	{-2, 1, 0, 2, 1, 4, 0, 0, 0},
	{0, 0, 1, -2, 0, 4, 0, 0, 0},
	{-1, 0, 1, 0, 0, -4, 0, 0, 0},
	{-2, 1, 0, 0, 0, -4, 0, 0, 0},
	{1, 0, 0, 0, 0, -4, 0, 0, 0},
	{0, 0, 1, 2, 0, 3, 0, 0, 0},
	{0, 0, -2, 2, 2, -3, 0, 0, 0},
	{-1, -1, 1, 0, 0, -3, 0, 0, 0},
	{0, 1, 1, 0, 0, -3, 0, 0, 0},
	{0, -1, 1, 2, 2, -3, 0, 0, 0},
	{2, -1, -1, 2, 2, -3, 0, 0, 0},
	{0, 0, 3, 2, 2, -3, 0, 0, 0},
	{2, -1, 0, 2, 2, -3, 0, 0, 0},
}

// NutationInLongitude returns Δψ in degrees at T, summing the full series.
// Coefficients are 0.0001″, so the sum divides by 10000 and then by 3600.
func NutationInLongitude(T float64) float64 {
	d := moonMeanElongation(T)
	m := sunMeanAnomalyNutation(T)
	mp := moonMeanAnomaly(T)
	f := moonArgumentOfLatitude(T)
	om := ascendingNodeLongitude(T)

	sum := 0.0
	for _, r := range nutationSeries {
		arg := float64(r.d)*d + float64(r.m)*m + float64(r.mp)*mp +
			float64(r.f)*f + float64(r.om)*om
		sum += (r.sin0 + r.sin1*T) * timeutil.SinD(arg)
	}
	return sum / 36000000
}

// NutationInObliquity returns Δε in degrees at T.
func NutationInObliquity(T float64) float64 {
	d := moonMeanElongation(T)
	m := sunMeanAnomalyNutation(T)
	mp := moonMeanAnomaly(T)
	f := moonArgumentOfLatitude(T)
	om := ascendingNodeLongitude(T)

	sum := 0.0
	for _, r := range nutationSeries {
		arg := float64(r.d)*d + float64(r.m)*m + float64(r.mp)*mp +
			float64(r.f)*f + float64(r.om)*om
		sum += (r.cos0 + r.cos1*T) * timeutil.CosD(arg)
	}
	return sum / 36000000
}
