package timeutil

import "time"

// RoundToMinute snaps t to the nearest whole minute: thirty seconds are
// added, then the seconds (and any nanoseconds) are zeroed. Applied only to
// final event times, never to intermediate values.
func RoundToMinute(t time.Time) time.Time {
	t = t.Add(30 * time.Second)
	return t.Add(-(time.Duration(t.Second())*time.Second + time.Duration(t.Nanosecond())))
}
