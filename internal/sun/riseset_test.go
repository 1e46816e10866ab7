package sun

import (
	"math"
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

func utcDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Solar noon at Greenwich is civil noon shifted by the equation of time.
func TestTransitEquationOfTime(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		earliest time.Time
		latest   time.Time
	}{
		{
			// Early January: sundial about 3.5 minutes slow.
			name:     "2000-01-01",
			date:     utcDay(2000, time.January, 1),
			earliest: time.Date(2000, time.January, 1, 12, 2, 0, 0, time.UTC),
			latest:   time.Date(2000, time.January, 1, 12, 6, 0, 0, time.UTC),
		},
		{
			// Mid-February carries the year's largest positive offset.
			name:     "2024-02-11",
			date:     utcDay(2024, time.February, 11),
			earliest: time.Date(2024, time.February, 11, 12, 12, 0, 0, time.UTC),
			latest:   time.Date(2024, time.February, 11, 12, 16, 0, 0, time.UTC),
		},
		{
			// Early November carries the largest negative offset.
			name:     "2024-11-03",
			date:     utcDay(2024, time.November, 3),
			earliest: time.Date(2024, time.November, 3, 11, 42, 0, 0, time.UTC),
			latest:   time.Date(2024, time.November, 3, 11, 46, 0, 0, time.UTC),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Transit(tc.date, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got.Before(tc.earliest) || got.After(tc.latest) {
				t.Errorf("Transit = %v, want within [%v, %v]", got, tc.earliest, tc.latest)
			}
		})
	}
}

// Rise and set should agree with an independent NOAA-style implementation to
// within a couple of minutes at ordinary latitudes.
func TestRiseSetAgainstReference(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		date     time.Time
	}{
		{"New York midsummer", 40.7128, -74.0060, utcDay(2000, time.June, 21)},
		{"Phoenix equinox", 33.4484, -112.0740, utcDay(2024, time.March, 20)},
		{"Sydney midsummer", -33.8688, 151.2093, utcDay(2023, time.December, 22)},
		{"Reykjavik equinox", 64.1466, -21.9426, utcDay(2022, time.September, 23)},
		{"Quito", -0.1807, -78.4678, utcDay(2021, time.April, 5)},
	}
	const tolerance = 3 * time.Minute
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			y, m, d := tc.date.Date()
			wantRise, wantSet := sunrise.SunriseSunset(tc.lat, tc.lon, y, m, d)

			gotRise, class, err := Rise(tc.date, tc.lat, tc.lon, StandardAltitude)
			if err != nil || class != Occurs {
				t.Fatalf("Rise: class %v, err %v", class, err)
			}
			gotSet, class, err := Set(tc.date, tc.lat, tc.lon, StandardAltitude)
			if err != nil || class != Occurs {
				t.Fatalf("Set: class %v, err %v", class, err)
			}

			if diff := gotRise.Sub(wantRise); diff < -tolerance || diff > tolerance {
				t.Errorf("rise %v vs reference %v (off by %v)", gotRise, wantRise, diff)
			}
			if diff := gotSet.Sub(wantSet); diff < -tolerance || diff > tolerance {
				t.Errorf("set %v vs reference %v (off by %v)", gotSet, wantSet, diff)
			}
			t.Logf("rise %v, set %v", gotRise, gotSet)
		})
	}
}

func TestPolarClassifications(t *testing.T) {
	// Tromsø, comfortably north of the arctic circle.
	const lat, lon = 69.6492, 18.9553

	midsummer := utcDay(2020, time.June, 21)
	if _, class, err := Rise(midsummer, lat, lon, StandardAltitude); err != nil || class != AboveHorizonAllDay {
		t.Errorf("midsummer rise: class %v, err %v, want AboveHorizonAllDay", class, err)
	}
	if _, class, err := Set(midsummer, lat, lon, StandardAltitude); err != nil || class != AboveHorizonAllDay {
		t.Errorf("midsummer set: class %v, err %v, want AboveHorizonAllDay", class, err)
	}

	midwinter := utcDay(2020, time.December, 21)
	if _, class, err := Rise(midwinter, lat, lon, StandardAltitude); err != nil || class != BelowHorizonAllDay {
		t.Errorf("midwinter rise: class %v, err %v, want BelowHorizonAllDay", class, err)
	}
	if _, class, err := Set(midwinter, lat, lon, StandardAltitude); err != nil || class != BelowHorizonAllDay {
		t.Errorf("midwinter set: class %v, err %v, want BelowHorizonAllDay", class, err)
	}

	// The classification depends on the target altitude: at midwinter the
	// sun tops out near -3°, so the civil-twilight crossing at -6° exists
	// even though the horizon crossing does not.
	if _, class, err := Rise(midwinter, lat, lon, 6); err != nil || class != Occurs {
		t.Errorf("midwinter civil dawn: class %v, err %v, want Occurs", class, err)
	}
	// At midsummer the sun bottoms out near +3°, so even the civil
	// crossing is absent.
	if _, class, err := Rise(midsummer, lat, lon, 6); err != nil || class != AboveHorizonAllDay {
		t.Errorf("midsummer civil dawn: class %v, err %v, want AboveHorizonAllDay", class, err)
	}
}

// Rise precedes transit precedes set, all three on the anchor day, with a
// plausible amount of daylight between them.
func TestRiseTransitSetOrdering(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		date     time.Time
	}{
		{"Berlin spring", 52.52, 13.405, utcDay(2023, time.April, 10)},
		{"Cape Town winter", -33.9249, 18.4241, utcDay(2023, time.June, 21)},
		{"Tokyo autumn", 35.6762, 139.6503, utcDay(2024, time.October, 2)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rise, class, err := Rise(tc.date, tc.lat, tc.lon, StandardAltitude)
			if err != nil || class != Occurs {
				t.Fatalf("rise: class %v, err %v", class, err)
			}
			set, class, err := Set(tc.date, tc.lat, tc.lon, StandardAltitude)
			if err != nil || class != Occurs {
				t.Fatalf("set: class %v, err %v", class, err)
			}
			transit, err := Transit(tc.date, tc.lon)
			if err != nil {
				t.Fatal(err)
			}

			if !rise.Before(transit) || !transit.Before(set) {
				t.Fatalf("ordering broken: rise %v, transit %v, set %v", rise, transit, set)
			}
			daylight := set.Sub(rise).Hours()
			if daylight < 8 || daylight > 16 {
				t.Errorf("daylight %.2f h outside sanity window", daylight)
			}
			// Transit splits the day nearly evenly; the small skew comes
			// from the sun's changing declination across the day.
			skew := transit.Sub(rise) - set.Sub(transit)
			if skew < -10*time.Minute || skew > 10*time.Minute {
				t.Errorf("transit skew %v too large", skew)
			}
		})
	}
}

// Events land on the requested local calendar day even when the zone is far
// from Greenwich.
func TestRiseSetLocalDayAnchoring(t *testing.T) {
	anchorage := time.FixedZone("UTC-9", -9*3600)
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, anchorage)
	const lat, lon = 61.2181, -149.9003

	rise, class, err := Rise(date, lat, lon, StandardAltitude)
	if err != nil || class != Occurs {
		t.Fatalf("rise: class %v, err %v", class, err)
	}
	set, class, err := Set(date, lat, lon, StandardAltitude)
	if err != nil || class != Occurs {
		t.Fatalf("set: class %v, err %v", class, err)
	}

	for _, ev := range []time.Time{rise, set} {
		local := ev.In(anchorage)
		if local.Year() != 2024 || local.Month() != time.January || local.Day() != 15 {
			t.Errorf("event %v falls on local day %v, want 2024-01-15", ev, local.Format("2006-01-02"))
		}
	}
	if !rise.Before(set) {
		t.Errorf("rise %v not before set %v", rise, set)
	}
	if hours := set.Sub(rise).Hours(); hours < 5 || hours > 8 {
		t.Errorf("mid-January daylight at Anchorage = %.2f h, expected 5-8 h", hours)
	}
}

// The refinement loop must already be converged at the third step: running a
// fourth correction moves the result by well under the convergence bound.
func TestRefinementConvergence(t *testing.T) {
	date := utcDay(2023, time.April, 10)
	const lat, lon = 52.52, 13.405

	base, offsetMin := utcAnchor(date)
	deltaT, err := timeutil.DeltaT(base.Year(), base.Month())
	if err != nil {
		t.Fatal(err)
	}
	T := timeutil.JulianCenturies(base)
	theta0 := ApparentSiderealTime(T)
	TD := T + deltaT/(3600*24*36525)
	alpha := ApparentRightAscension(TD)
	delta := ApparentDeclination(TD)

	cosH0 := (timeutil.SinD(-StandardAltitude) - timeutil.SinD(lat)*timeutil.SinD(delta)) /
		(timeutil.CosD(lat) * timeutil.CosD(delta))
	H0 := timeutil.Rad2Deg(math.Acos(cosH0))
	m := normalizeM((alpha-lon-theta0)/360, offsetMin) - H0/360

	for i := 0; i < maxRefinements; i++ {
		m += riseSetCorrection(T, theta0, deltaT, lat, lon, StandardAltitude, m)
	}
	extra := riseSetCorrection(T, theta0, deltaT, lat, lon, StandardAltitude, m)
	if math.Abs(extra) > convergence/10 {
		t.Errorf("fourth correction = %.8f day (%.2f s), solver not converged",
			extra, math.Abs(extra)*86400)
	}
}
