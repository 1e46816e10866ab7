package moon

import (
	"math"
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// Position returns an approximate geocentric right ascension and declination
// of the moon in degrees at t.
//
// The ecliptic longitude keeps the six dominant periodic terms (equation of
// center, evection, variation, annual equation and the leading flattening
// term) and the latitude the four largest. That puts the result within a few
// arcminutes of a full theory, which is all the illumination geometry needs;
// rise and set work would want the complete series plus parallax.
func Position(t time.Time) (ra, dec float64) {
	T := timeutil.JulianCenturies(t)

	// Mean elements in degrees: longitude L, elongation from the sun D,
	// solar anomaly M, lunar anomaly MP, argument of latitude F.
	L := timeutil.Normalize360(218.3164477 + 481267.88123421*T)
	D := timeutil.Normalize360(297.8501921 + 445267.1114034*T)
	M := timeutil.Normalize360(357.5291092 + 35999.0502909*T)
	MP := timeutil.Normalize360(134.9633964 + 477198.8675055*T)
	F := timeutil.Normalize360(93.2720950 + 483202.0175233*T)

	s := timeutil.SinD
	lon := L +
		6.289*s(MP) +
		1.274*s(2*D-MP) +
		0.658*s(2*D) +
		0.214*s(2*MP) -
		0.186*s(M) -
		0.114*s(2*F)
	lat := 5.128*s(F) +
		0.280*s(MP+F) +
		0.277*s(MP-F) +
		0.173*s(2*D-F)

	// Rotate ecliptic coordinates to equatorial. The linear obliquity is
	// plenty at this truncation level.
	eps := 23.439291 - 0.013004*T

	c := timeutil.CosD
	x := c(lat) * c(lon)
	y := c(lat)*s(lon)*c(eps) - s(lat)*s(eps)
	z := c(lat)*s(lon)*s(eps) + s(lat)*c(eps)

	ra = timeutil.Normalize360(timeutil.Rad2Deg(math.Atan2(y, x)))
	dec = timeutil.Rad2Deg(math.Asin(z))
	return ra, dec
}
