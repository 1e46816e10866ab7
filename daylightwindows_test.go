package meeussunmoon

import (
	"errors"
	"testing"
	"time"
)

func TestGoldenAndBlueHourMidLatitude(t *testing.T) {
	berlin := Coordinates{Lat: 52.52, Lon: 13.405}
	date := time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC)
	cfg := Config{}

	golden, err := GoldenHour(date, berlin, cfg)
	if err != nil {
		t.Fatalf("GoldenHour: %v", err)
	}
	blue, err := BlueHour(date, berlin, cfg)
	if err != nil {
		t.Fatalf("BlueHour: %v", err)
	}
	rise, err := Sunrise(date, berlin, cfg)
	if err != nil {
		t.Fatalf("Sunrise: %v", err)
	}
	set, err := Sunset(date, berlin, cfg)
	if err != nil {
		t.Fatalf("Sunset: %v", err)
	}

	if !golden.HasMorning || !golden.HasEvening {
		t.Fatalf("golden hour windows = %+v, want both sides in April in Berlin", golden)
	}
	if !blue.HasMorning || !blue.HasEvening {
		t.Fatalf("blue hour windows = %+v, want both sides in April in Berlin", blue)
	}

	// Sunrise falls inside the morning golden hour, sunset inside the
	// evening one: -50' sits between -4° and +6°.
	if rise.Time.Before(golden.Morning.Start) || rise.Time.After(golden.Morning.End) {
		t.Errorf("sunrise %v outside morning golden hour [%v, %v]",
			rise.Time, golden.Morning.Start, golden.Morning.End)
	}
	if set.Time.Before(golden.Evening.Start) || set.Time.After(golden.Evening.End) {
		t.Errorf("sunset %v outside evening golden hour [%v, %v]",
			set.Time, golden.Evening.Start, golden.Evening.End)
	}

	// Blue hour hands over to golden hour at the shared -4° crossing.
	if d := golden.Morning.Start.Sub(blue.Morning.End); d < -time.Second || d > time.Second {
		t.Errorf("morning blue hour ends %v, golden hour starts %v, want the same crossing",
			blue.Morning.End, golden.Morning.Start)
	}
	if d := blue.Evening.Start.Sub(golden.Evening.End); d < -time.Second || d > time.Second {
		t.Errorf("evening golden hour ends %v, blue hour starts %v, want the same crossing",
			golden.Evening.End, blue.Evening.Start)
	}

	// Plausible durations at mid latitudes in spring.
	for name, w := range map[string]Window{
		"morning golden": golden.Morning,
		"evening golden": golden.Evening,
		"morning blue":   blue.Morning,
		"evening blue":   blue.Evening,
	} {
		d := w.End.Sub(w.Start)
		if d < 10*time.Minute || d > 2*time.Hour {
			t.Errorf("%s hour lasts %v, want a plausible window", name, d)
		}
		t.Logf("%s: %v to %v (%v)", name, w.Start, w.End, d)
	}
}

// Under the midnight sun the sun never reaches the golden or blue band.
func TestDaylightWindowsMidnightSun(t *testing.T) {
	tromso := Coordinates{Lat: 69.6492, Lon: 18.9553}
	date := time.Date(2024, time.June, 20, 0, 0, 0, 0, time.UTC)

	if _, err := GoldenHour(date, tromso, Config{}); !errors.Is(err, ErrNoRiseNoSet) {
		t.Errorf("GoldenHour error = %v, want ErrNoRiseNoSet", err)
	}
	if _, err := BlueHour(date, tromso, Config{}); !errors.Is(err, ErrNoRiseNoSet) {
		t.Errorf("BlueHour error = %v, want ErrNoRiseNoSet", err)
	}
}

func TestDaylightWindowsRounding(t *testing.T) {
	berlin := Coordinates{Lat: 52.52, Lon: 13.405}
	date := time.Date(2023, time.April, 10, 0, 0, 0, 0, time.UTC)

	golden, err := GoldenHour(date, berlin, Config{RoundToNearestMinute: true})
	if err != nil {
		t.Fatalf("GoldenHour: %v", err)
	}
	for _, when := range []time.Time{
		golden.Morning.Start, golden.Morning.End,
		golden.Evening.Start, golden.Evening.End,
	} {
		if when.Second() != 0 || when.Nanosecond() != 0 {
			t.Errorf("window boundary %v not on a whole minute", when)
		}
	}
}
