package entity

import (
	"time"

	"github.com/google/uuid"
)

// Color identifies a swatch from the fixed tracker palette. The palette
// has 18 numbered swatches; arbitrary RGB values are not accepted.
type Color int

// Palette bounds.
const (
	MinColor Color = 1
	MaxColor Color = 18
)

// IsValid reports whether the color is a palette swatch.
func (c Color) IsValid() bool {
	return c >= MinColor && c <= MaxColor
}

// Tracker represents a trackable habit or a one-off irregular event.
// A habit carries a non-empty Schedule; an irregular event has an empty
// one and is due only on "today" at evaluation time.
type Tracker struct {
	ID       uuid.UUID
	Name     string
	Emoji    string
	Color    Color
	Schedule Schedule
	IsPinned bool
	// OriginalCategory is the name of the category the tracker belongs
	// to when unpinned. While pinned the tracker lives in the reserved
	// pinned category and this field records where to return it.
	OriginalCategory string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewTracker creates a new Tracker entity with a fresh identity.
// Validation of the creation fields is an application-layer concern.
func NewTracker(name, emoji string, color Color, schedule Schedule, categoryName string) *Tracker {
	now := time.Now().UTC()

	return &Tracker{
		ID:               uuid.New(),
		Name:             name,
		Emoji:            emoji,
		Color:            color,
		Schedule:         schedule,
		OriginalCategory: categoryName,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsHabit reports whether the tracker recurs on a weekday schedule.
func (t *Tracker) IsHabit() bool {
	return !t.Schedule.IsEmpty()
}

// IsDue decides whether the tracker should appear as actionable on the
// given date. Habits are due on the dates whose weekday is in their
// schedule. Irregular events are due only when the queried date is the
// same calendar day as today, which the caller supplies from a clock.
func (t *Tracker) IsDue(date, today time.Time) bool {
	if t.IsHabit() {
		return t.Schedule.Contains(date.UTC().Weekday())
	}
	return SameDay(date, today)
}
