package meeussunmoon

import (
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/sun"
	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// SunPosition bundles the values of the solar pipeline at one instant. It
// exists for display and verification tooling; the event functions consume
// the same quantities internally.
//
// Angles are degrees. DeltaT is seconds. SiderealTime is apparent sidereal
// time at Greenwich. All series quantities except SiderealTime are evaluated
// in dynamical time, i.e. with ΔT already folded in.
type SunPosition struct {
	JulianDay           float64
	DeltaT              float64
	ApparentLongitude   float64
	RightAscension      float64
	Declination         float64
	TrueObliquity       float64
	NutationInLongitude float64
	NutationInObliquity float64
	SiderealTime        float64
}

// SunPositionAt evaluates the solar pipeline at t.
func SunPositionAt(t time.Time) (SunPosition, error) {
	utc := t.UTC()
	deltaT, err := timeutil.DeltaT(utc.Year(), utc.Month())
	if err != nil {
		return SunPosition{}, err
	}

	jd := timeutil.JulianDay(utc)
	T := timeutil.JulianCenturiesFromJD(jd)
	TD := T + deltaT/(3600*24*36525)

	return SunPosition{
		JulianDay:           jd,
		DeltaT:              deltaT,
		ApparentLongitude:   timeutil.Normalize360(sun.ApparentLongitude(TD)),
		RightAscension:      sun.ApparentRightAscension(TD),
		Declination:         sun.ApparentDeclination(TD),
		TrueObliquity:       sun.TrueObliquity(TD),
		NutationInLongitude: sun.NutationInLongitude(TD),
		NutationInObliquity: sun.NutationInObliquity(TD),
		SiderealTime:        sun.ApparentSiderealTime(T),
	}, nil
}
