package moon

import (
	"math"
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

// Phase indices used throughout: 0 new moon, 1 first quarter, 2 full moon,
// 3 last quarter. A lunation number k counts synodic months from the new
// moon of 2000-01-06; quarter phases ride at k + 1/4, 1/2, 3/4.

// candidateLunations is how many consecutive lunations get evaluated per
// year. A calendar year holds at most 13 of any one phase; starting one
// lunation early and walking 15 covers both ends with slack.
const candidateLunations = 15

// approxK estimates the lunation number near the given calendar date.
func approxK(year int, month time.Month, day int) float64 {
	y := float64(year) + float64(month-1)/12 + float64(day-1)/365.25
	return (y - 2000) * 12.3685
}

// truePhase returns the JDE (Julian ephemeris date, i.e. dynamical time) of
// the lunar phase at lunation k. The fractional part of k selects the phase
// and must match the phase argument.
func truePhase(k float64, phase int) float64 {
	T := k / 1236.85

	jde := 2451550.09766 + 29.530588861*k +
		0.00015437*T*T - 0.000000150*T*T*T + 0.00000000073*T*T*T*T

	// Eccentricity damping factor for the solar terms.
	E := 1 - 0.002516*T - 0.0000074*T*T

	// Mean anomalies and latitude arguments at k, degrees, unreduced.
	M := 2.5534 + 29.10535670*k - 0.0000014*T*T - 0.00000011*T*T*T
	MP := 201.5643 + 385.81693528*k + 0.0107582*T*T +
		0.00001238*T*T*T - 0.000000058*T*T*T*T
	F := 160.7108 + 390.67050284*k - 0.0016118*T*T -
		0.00000227*T*T*T + 0.000000011*T*T*T*T
	Om := 124.7746 - 1.56375588*k + 0.0020672*T*T + 0.00000215*T*T*T

	switch phase {
	case 0, 2:
		jde += newFullCorrections(E, M, MP, F, Om, phase == 2)
	default:
		jde += quarterCorrections(E, M, MP, F, Om, phase == 1)
	}
	return jde + planetaryCorrections(T, k)
}

// newFullCorrections sums the periodic corrections for new (full=false) and
// full (full=true) moons, in days. The two phases differ only in the seven
// leading coefficients; the tail of the series is shared.
func newFullCorrections(E, M, MP, F, Om float64, full bool) float64 {
	s := timeutil.SinD

	var c float64
	if full {
		c = -0.40614*s(MP) +
			0.17302*E*s(M) +
			0.01614*s(2*MP) +
			0.01043*s(2*F) +
			0.00734*E*s(MP-M) -
			0.00515*E*s(MP+M) +
			0.00209*E*E*s(2*M)
	} else {
		c = -0.40720*s(MP) +
			0.17241*E*s(M) +
			0.01608*s(2*MP) +
			0.01039*s(2*F) +
			0.00739*E*s(MP-M) -
			0.00514*E*s(MP+M) +
			0.00208*E*E*s(2*M)
	}

	c += -0.00111*s(MP-2*F) -
		0.00057*s(MP+2*F) +
		0.00056*E*s(2*MP+M) -
		0.00042*s(3*MP) +
		0.00042*E*s(M+2*F) +
		0.00038*E*s(M-2*F) -
		0.00024*E*s(2*MP-M) -
		0.00017*s(Om) -
		0.00007*s(MP+2*M) +
		0.00004*s(2*MP-2*F) +
		0.00004*s(3*M) +
		0.00003*s(MP+M-2*F) +
		0.00003*s(2*MP+2*F) -
		0.00003*s(MP+M+2*F) +
		0.00003*s(MP-M+2*F) -
		0.00002*s(MP-M-2*F) -
		0.00002*s(3*MP+M) +
		0.00002*s(4*MP)
	return c
}

// quarterCorrections sums the periodic corrections for the quarter phases,
// in days, including the W adjustment that pushes first quarters later and
// last quarters earlier.
func quarterCorrections(E, M, MP, F, Om float64, first bool) float64 {
	s := timeutil.SinD

	c := -0.62801*s(MP) +
		0.17172*E*s(M) -
		0.01183*E*s(MP+M) +
		0.00862*s(2*MP) +
		0.00804*s(2*F) +
		0.00454*E*s(MP-M) +
		0.00204*E*E*s(2*M) -
		0.00180*s(MP-2*F) -
		0.00070*s(MP+2*F) -
		0.00040*s(3*MP) -
		0.00034*E*s(2*MP-M) +
		0.00032*E*s(M+2*F) +
		0.00032*E*s(M-2*F) -
		0.00028*E*E*s(MP+2*M) +
		0.00027*E*s(2*MP+M) -
		0.00017*s(Om) -
		0.00005*s(MP-M-2*F) +
		0.00004*s(2*MP+2*F) -
		0.00004*s(MP+M+2*F) +
		0.00004*s(MP-2*M) +
		0.00003*s(MP+M-2*F) +
		0.00003*s(3*M) +
		0.00002*s(2*MP-2*F) +
		0.00002*s(MP-M+2*F) -
		0.00002*s(3*MP+M)

	co := timeutil.CosD
	w := 0.00306 -
		0.00038*E*co(M) +
		0.00026*co(MP) -
		0.00002*co(MP-M) +
		0.00002*co(MP+M) +
		0.00002*co(2*F)
	if first {
		return c + w
	}
	return c - w
}

// planetaryCorrections sums the fourteen additional arguments A1..A14, in
// days. These capture planetary perturbations too slow to fold into the
// main series.
func planetaryCorrections(T, k float64) float64 {
	s := timeutil.SinD
	return 0.000325*s(299.77+0.107408*k-0.009173*T*T) +
		0.000165*s(251.88+0.016321*k) +
		0.000164*s(251.83+26.651886*k) +
		0.000126*s(349.42+36.412478*k) +
		0.000110*s(84.66+18.206239*k) +
		0.000062*s(141.74+53.303771*k) +
		0.000060*s(207.14+2.453732*k) +
		0.000056*s(154.84+7.306860*k) +
		0.000047*s(34.52+27.261239*k) +
		0.000042*s(207.19+0.121824*k) +
		0.000040*s(291.34+1.844379*k) +
		0.000037*s(161.72+24.198154*k) +
		0.000035*s(239.56+25.513099*k) +
		0.000023*s(331.55+3.592518*k)
}

// PhasesForYear returns every instant of the given phase that falls strictly
// inside the calendar year as reckoned in zone, in chronological order,
// already converted from dynamical time to UT and expressed in zone.
//
// Rounding, when requested, happens before the year-boundary filter, so an
// instant seconds before local midnight on December 31 can round into the
// next year and drop out. That matches how the event would be displayed.
func PhasesForYear(year, phase int, zone *time.Location, round bool) ([]time.Time, error) {
	yearBegin := time.Date(year, time.January, 1, 0, 0, 0, 0, zone)
	yearEnd := time.Date(year+1, time.January, 1, 0, 0, 0, 0, zone)

	k := math.Floor(approxK(year, time.January, 1)) - 1 + float64(phase)/4

	var times []time.Time
	for i := 0; i < candidateLunations; i++ {
		jde := truePhase(k, phase)

		// The series yields dynamical time. Pull it back to UT by ΔT,
		// rounded to whole seconds the way the instant will be shown.
		t := timeutil.TimeFromJulianDay(jde).In(zone)
		deltaT, err := timeutil.DeltaT(t.Year(), t.Month())
		if err != nil {
			return nil, err
		}
		shift := time.Duration(math.Round(math.Abs(deltaT))) * time.Second
		if deltaT > 0 {
			t = t.Add(-shift)
		} else {
			t = t.Add(shift)
		}

		if round {
			t = timeutil.RoundToMinute(t)
		}
		if t.After(yearBegin) && t.Before(yearEnd) {
			times = append(times, t)
		}
		k++
	}
	return times, nil
}
