// Package entity defines the core business entities for the domain layer.
package entity

import (
	"sort"
	"time"
)

// Schedule is an ordered set of weekdays on which a habit recurs.
// Weekday numbering follows Go's time.Weekday: Sunday = 0 through
// Saturday = 6. An empty schedule marks the tracker as an irregular
// (one-off) event.
type Schedule []time.Weekday

// NewSchedule builds a normalized schedule: duplicates removed,
// weekdays sorted ascending.
func NewSchedule(days ...time.Weekday) Schedule {
	seen := make(map[time.Weekday]bool, len(days))
	schedule := make(Schedule, 0, len(days))
	for _, day := range days {
		if day < time.Sunday || day > time.Saturday {
			continue
		}
		if !seen[day] {
			seen[day] = true
			schedule = append(schedule, day)
		}
	}
	sort.Slice(schedule, func(i, j int) bool { return schedule[i] < schedule[j] })
	return schedule
}

// Contains reports whether the schedule includes the given weekday.
func (s Schedule) Contains(day time.Weekday) bool {
	for _, d := range s {
		if d == day {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the schedule has no weekdays.
func (s Schedule) IsEmpty() bool {
	return len(s) == 0
}

// SameDay reports whether two instants fall on the same calendar day in UTC.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DayOf truncates an instant to UTC midnight. Completion records are
// stored at calendar-day granularity.
func DayOf(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
