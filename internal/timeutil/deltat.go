package timeutil

import (
	"errors"
	"time"
)

// ErrDeltaTRange is returned for dates before the year -1999, where the ΔT
// polynomial model has no defined branch.
var ErrDeltaTRange = errors.New("ΔT is undefined before the year -1999")

// DeltaT returns ΔT = TT − UT in seconds for the given calendar year and
// month, from the Espenak/Meeus piecewise polynomial fit to the historical
// record and its long-range projections.
//
// The decimal year is taken at mid-month. The fit is not continuous in value
// at every branch boundary; the published branches are reproduced verbatim,
// small steps included, rather than smoothed over.
func DeltaT(year int, month time.Month) (float64, error) {
	y := float64(year) + (float64(month)-0.5)/12

	switch {
	case y < -1999:
		return 0, ErrDeltaTRange

	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u, nil

	case y < 500:
		u := y / 100
		return Polynomial(u,
			10583.6, -1014.41, 33.78311, -5.952053,
			-0.1798452, 0.022174192, 0.0090316521), nil

	case y < 1600:
		u := (y - 1000) / 100
		return Polynomial(u,
			1574.2, -556.01, 71.23472, 0.319781,
			-0.8503463, -0.005050998, 0.0083572073), nil

	case y < 1700:
		t := y - 1600
		return Polynomial(t, 120, -0.9808, -0.01532, 1.0/7129), nil

	case y < 1800:
		t := y - 1700
		return Polynomial(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000), nil

	case y < 1860:
		t := y - 1800
		return Polynomial(t,
			13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436,
			0.0000121272, -0.0000001699, 0.000000000875), nil

	case y < 1900:
		t := y - 1860
		return Polynomial(t,
			7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174), nil

	case y < 1920:
		t := y - 1900
		return Polynomial(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197), nil

	case y < 1941:
		t := y - 1920
		return Polynomial(t, 21.20, 0.84493, -0.076100, 0.0020936), nil

	case y < 1961:
		t := y - 1950
		return Polynomial(t, 29.07, 0.407, -1.0/233, 1.0/2547), nil

	case y < 1986:
		t := y - 1975
		return Polynomial(t, 45.45, 1.067, -1.0/260, -1.0/718), nil

	case y < 2005:
		t := y - 2000
		return Polynomial(t,
			63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599), nil

	case y < 2050:
		t := y - 2000
		return Polynomial(t, 62.92, 0.32217, 0.005589), nil

	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y), nil

	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u, nil
	}
}
