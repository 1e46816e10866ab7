package timeutil

import "math"

// -----------------------------
// Basic degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

// Normalize360 reduces an angle in degrees to [0, 360).
//
// Reduction is never applied implicitly: the series evaluations call this
// exactly where the reference tables do, since some sums must stay
// unnormalized until an inverse trig call.
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	return d
}

// Polynomial evaluates c[0] + c[1]*x + c[2]*x² + ... with Horner's scheme.
// The long obliquity and ΔT fits read much better as coefficient lists.
func Polynomial(x float64, c ...float64) float64 {
	p := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		p = p*x + c[i]
	}
	return p
}
