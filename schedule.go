package flightprayer

import (
	"fmt"
	"sort"
)

// ScheduleEntry is one line of the final output: a prayer, where in the
// track it happens (or -1), when, and which way to face.
type ScheduleEntry struct {
	Prayer Prayer
	Index  int
	Hour   float64 // boundary local hour, NaN when not observed
	Clock  string  // "HH:MM AM/PM", or the absent placeholder
	Qibla  QiblaBearing
}

func (e ScheduleEntry)String() string {
	idx := AbsentClock
	if e.Index >= 0 {
		idx = fmt.Sprintf("%d", e.Index)
	}
	return fmt.Sprintf("%-8s %4s  %s", e.Prayer, idx, e.Clock)
}

// Schedule is the six entries in chronological track order; boundaries
// not observed in-flight come last, in declaration order.
type Schedule []ScheduleEntry

// AssembleSchedule orders crossings chronologically (by track index,
// unobserved last) and packages them with formatted clock strings and
// their bearings. crossings and bearings are parallel, in prayer
// declaration order, as returned by DetectCrossings and ComputeBearings.
func AssembleSchedule(crossings []Crossing, bearings []QiblaBearing) Schedule {
	s := make(Schedule, 0, len(crossings))
	for i,c := range crossings {
		entry := ScheduleEntry{
			Prayer: c.Prayer,
			Index:  c.Index,
			Hour:   c.Hour,
			Clock:  FormatClock12(c.Hour),
		}
		if i < len(bearings) {
			entry.Qibla = bearings[i]
		}
		s = append(s, entry)
	}

	// Stable, so unobserved entries keep declaration order among
	// themselves.
	sort.SliceStable(s, func(i, j int) bool {
		if (s[i].Index < 0) != (s[j].Index < 0) {
			return s[j].Index < 0
		}
		return s[i].Index < s[j].Index
	})
	return s
}
