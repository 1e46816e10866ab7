package meeussunmoon

import (
	"testing"
	"time"
)

func TestMoonPhasesUnknownPhase(t *testing.T) {
	if _, err := MoonPhases(2024, MoonPhase(9), nil, Config{}); err == nil {
		t.Fatal("MoonPhases with phase 9: want an error, got nil")
	}
}

func TestMoonPhasesNilZoneIsUTC(t *testing.T) {
	times, err := MoonPhases(2024, FullMoon, nil, Config{})
	if err != nil {
		t.Fatalf("MoonPhases: %v", err)
	}
	if len(times) == 0 {
		t.Fatal("MoonPhases returned no full moons for 2024")
	}
	if times[0].Location() != time.UTC {
		t.Errorf("zone = %v, want UTC when zone is nil", times[0].Location())
	}
}

// A merged year of phases is chronological, counts out to 49 or 50 events,
// and strictly cycles new -> first quarter -> full -> last quarter.
func TestAllMoonPhasesYearStructure(t *testing.T) {
	events, err := AllMoonPhases(2024, time.UTC, Config{})
	if err != nil {
		t.Fatalf("AllMoonPhases: %v", err)
	}

	if n := len(events); n < 49 || n > 50 {
		t.Errorf("event count = %d, want 49 or 50", n)
	}
	for i, ev := range events {
		if ev.Time.Year() != 2024 {
			t.Errorf("event %d in year %d, want 2024", i, ev.Time.Year())
		}
		if i == 0 {
			continue
		}
		prev := events[i-1]
		gap := ev.Time.Sub(prev.Time)
		if !ev.Time.After(prev.Time) {
			t.Errorf("event %d at %v not after %v", i, ev.Time, prev.Time)
		}
		if gap < 5*24*time.Hour || gap > 10*24*time.Hour {
			t.Errorf("gap before event %d = %v, want roughly a quarter lunation", i, gap)
		}
		if want := MoonPhase((int(prev.Phase) + 1) % 4); ev.Phase != want {
			t.Errorf("event %d phase = %v after %v, want %v", i, ev.Phase, prev.Phase, want)
		}
	}
	t.Logf("2024: %d principal phases, first %v %v", len(events), events[0].Phase, events[0].Time)
}

// The January 2025 full moon against its published instant, expressed in a
// zone well away from UTC.
func TestMoonPhasesKnownInstantInZone(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	times, err := MoonPhases(2025, FullMoon, newYork, Config{})
	if err != nil {
		t.Fatalf("MoonPhases: %v", err)
	}
	want := time.Date(2025, time.January, 13, 17, 27, 0, 0, newYork)

	var closest time.Time
	for _, ft := range times {
		if closest.IsZero() || absDuration(ft.Sub(want)) < absDuration(closest.Sub(want)) {
			closest = ft
		}
	}
	if closest.IsZero() {
		t.Fatal("no full moons returned for 2025")
	}
	if d := absDuration(closest.Sub(want)); d > 5*time.Minute {
		t.Errorf("January full moon = %v, want %v within 5m (off by %v)", closest, want, d)
	}
	if closest.Location() != newYork {
		t.Errorf("zone = %v, want America/New_York", closest.Location())
	}
}

func TestMoonPhaseString(t *testing.T) {
	if got := FirstQuarter.String(); got != "First Quarter" {
		t.Errorf("FirstQuarter.String() = %q", got)
	}
	if got := MoonPhase(9).String(); got != "MoonPhase(9)" {
		t.Errorf("MoonPhase(9).String() = %q", got)
	}
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
