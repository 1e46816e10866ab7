// Package meeussunmoon computes sunrise, sunset, solar noon, twilight times
// and the principal lunar phases for arbitrary dates and places, using
// closed-form low-precision series: no ephemeris files, no network, nothing
// cached between calls.
//
// Times go in and come out as time.Time values. The calendar day and the
// output zone of an event are taken from the date argument's location, so
// callers pick their zone by constructing the date in it. Every function is
// a pure function of its arguments; the package is safe for concurrent use
// without locking.
//
// Accuracy is the usual low-precision trade: event times are good to about a
// minute for the sun and well under a minute for lunar phases, which is as
// much as the underlying series promise.
package meeussunmoon

import (
	"errors"
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/sun"
	"github.com/zyo00ody/MeeusSunMoon/internal/timeutil"
)

var (
	// ErrNoRiseNoSet is returned by DaylightHours when the sun rises but
	// does not set on the requested date or the other way around, and by
	// GoldenHour and BlueHour when no complete passage through the
	// requested altitude band exists on either side of the day.
	ErrNoRiseNoSet = errors.New("the sun does not both rise and set on this date")

	// ErrDeltaTRange is returned for dates before the year -1999, outside
	// the ΔT model every computation leans on.
	ErrDeltaTRange = timeutil.ErrDeltaTRange
)

// Coordinates is a geographic position in degrees: latitude north-positive,
// longitude east-positive.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Config carries the engine options. It is a plain value: build it once,
// pass it everywhere, share it freely across goroutines. Nothing retains or
// mutates it, so distinct calls can use distinct configurations without any
// coordination.
type Config struct {
	// RoundToNearestMinute snaps returned event times to the nearest whole
	// minute. Thirty seconds are added and the seconds field is zeroed, so
	// the snap never moves an event backwards across a minute boundary.
	RoundToNearestMinute bool

	// ReturnPlaceholders substitutes a nominal local time for polar
	// outcomes instead of a zero time: 06:00 on the rise side, 18:00 on
	// the set side, an hour later when the date is in daylight saving.
	// The outcome classification stays on the event either way.
	ReturnPlaceholders bool

	// MidnightSunMarker and PolarNightMarker are what SunEvent.Format
	// appends when rendering a polar outcome.
	MidnightSunMarker string
	PolarNightMarker  string
}

// DefaultConfig returns the stock options: exact seconds, no placeholder
// times, and the conventional double dagger and dagger polar markers.
func DefaultConfig() Config {
	return Config{
		MidnightSunMarker: "‡",
		PolarNightMarker:  "†",
	}
}

// SunEventClass says whether a sun event happened or why it did not.
type SunEventClass int

const (
	// NormalEvent is an ordinary crossing with a real time.
	NormalEvent SunEventClass = iota
	// MidnightSun means the sun stayed above the target all day.
	MidnightSun
	// PolarNight means the sun stayed below the target all day.
	PolarNight
)

func (c SunEventClass) String() string {
	switch c {
	case NormalEvent:
		return "normal"
	case MidnightSun:
		return "midnight sun"
	case PolarNight:
		return "polar night"
	default:
		return "unknown"
	}
}

// SunEvent is the outcome of a sunrise, sunset or twilight computation: a
// classification, plus a time when one exists. For polar outcomes the time
// is zero unless Config.ReturnPlaceholders put a nominal one in.
type SunEvent struct {
	Time  time.Time
	Class SunEventClass
}

// HasTime reports whether the event carries a usable time, real or
// placeholder.
func (e SunEvent) HasTime() bool {
	return !e.Time.IsZero()
}

// Format renders the event time using the given time.Time layout. Polar
// outcomes get the configured marker appended; a polar outcome without a
// placeholder time renders as the marker alone.
func (e SunEvent) Format(layout string, cfg Config) string {
	marker := ""
	switch e.Class {
	case MidnightSun:
		marker = cfg.MidnightSunMarker
	case PolarNight:
		marker = cfg.PolarNightMarker
	}
	if !e.HasTime() {
		return marker
	}
	return e.Time.Format(layout) + marker
}

// newSunEvent converts a solver outcome into the public shape: zone
// conversion and rounding for real events, placeholder synthesis for polar
// ones. placeholderHour is 6 for dawn-side events and 18 for dusk-side ones.
func newSunEvent(date time.Time, utc time.Time, class sun.Classification, placeholderHour int, cfg Config) SunEvent {
	switch class {
	case sun.AboveHorizonAllDay:
		return polarEvent(date, MidnightSun, placeholderHour, cfg)
	case sun.BelowHorizonAllDay:
		return polarEvent(date, PolarNight, placeholderHour, cfg)
	}
	t := utc.In(date.Location())
	if cfg.RoundToNearestMinute {
		t = timeutil.RoundToMinute(t)
	}
	return SunEvent{Time: t, Class: NormalEvent}
}

func polarEvent(date time.Time, class SunEventClass, hour int, cfg Config) SunEvent {
	ev := SunEvent{Class: class}
	if !cfg.ReturnPlaceholders {
		return ev
	}
	y, m, d := date.Date()
	t := time.Date(y, m, d, hour, 0, 0, 0, date.Location())
	// DST is judged on the input date, not the synthesized clock time.
	if date.IsDST() {
		t = t.Add(time.Hour)
	}
	ev.Time = t
	return ev
}
