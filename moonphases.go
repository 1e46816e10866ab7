package meeussunmoon

import (
	"fmt"
	"sort"
	"time"

	"github.com/zyo00ody/MeeusSunMoon/internal/moon"
)

// MoonPhase identifies one of the four principal lunar phases.
type MoonPhase int

const (
	NewMoon MoonPhase = iota
	FirstQuarter
	FullMoon
	LastQuarter
)

func (p MoonPhase) String() string {
	switch p {
	case NewMoon:
		return "New Moon"
	case FirstQuarter:
		return "First Quarter"
	case FullMoon:
		return "Full Moon"
	case LastQuarter:
		return "Last Quarter"
	default:
		return fmt.Sprintf("MoonPhase(%d)", int(p))
	}
}

// PhaseEvent is one dated principal phase, as returned by AllMoonPhases.
type PhaseEvent struct {
	Time  time.Time
	Phase MoonPhase
}

// MoonPhases returns every occurrence of the given phase in the calendar
// year, reckoned and expressed in zone. A nil zone means UTC. Each year
// carries 12 or 13 occurrences of each phase.
//
// Only Config.RoundToNearestMinute is consulted; an event that rounds across
// midnight of New Year's Eve belongs to the year it displays in.
func MoonPhases(year int, phase MoonPhase, zone *time.Location, cfg Config) ([]time.Time, error) {
	if phase < NewMoon || phase > LastQuarter {
		return nil, fmt.Errorf("unknown MoonPhase: %d", phase)
	}
	if zone == nil {
		zone = time.UTC
	}
	return moon.PhasesForYear(year, int(phase), zone, cfg.RoundToNearestMinute)
}

// AllMoonPhases returns the year's principal phases of every kind merged
// into one chronological sequence, typically 49 or 50 events alternating
// new, first quarter, full, last quarter.
func AllMoonPhases(year int, zone *time.Location, cfg Config) ([]PhaseEvent, error) {
	var events []PhaseEvent
	for phase := NewMoon; phase <= LastQuarter; phase++ {
		times, err := MoonPhases(year, phase, zone, cfg)
		if err != nil {
			return nil, err
		}
		for _, t := range times {
			events = append(events, PhaseEvent{Time: t, Phase: phase})
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Time.Before(events[j].Time)
	})
	return events, nil
}
