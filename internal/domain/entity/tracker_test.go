package entity

import (
	"testing"
	"time"
)

func TestColorIsValid(t *testing.T) {
	cases := []struct {
		color Color
		valid bool
	}{
		{0, false},
		{MinColor, true},
		{9, true},
		{MaxColor, true},
		{19, false},
		{-3, false},
	}

	for _, c := range cases {
		if got := c.color.IsValid(); got != c.valid {
			t.Errorf("Color(%d).IsValid() = %v, expected %v", c.color, got, c.valid)
		}
	}
}

func TestTrackerIsHabit(t *testing.T) {
	habit := NewTracker("Run", "🏃", 3, NewSchedule(time.Monday), "Health")
	event := NewTracker("Dentist", "🦷", 4, NewSchedule(), "Health")

	if !habit.IsHabit() {
		t.Error("tracker with a schedule should be a habit")
	}
	if event.IsHabit() {
		t.Error("tracker without a schedule should be an irregular event")
	}
}

func TestTrackerIsDue(t *testing.T) {
	// 2024-03-15 is a Friday, 2024-03-16 a Saturday.
	friday := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	t.Run("habit is due on scheduled weekdays", func(t *testing.T) {
		habit := NewTracker("Read", "📚", 1, NewSchedule(time.Friday), "Leisure")

		if !habit.IsDue(friday, saturday) {
			t.Error("habit should be due on a scheduled weekday regardless of today")
		}
		if habit.IsDue(saturday, saturday) {
			t.Error("habit should not be due on an unscheduled weekday")
		}
	})

	t.Run("event is due only on today", func(t *testing.T) {
		event := NewTracker("Concert", "🎸", 2, NewSchedule(), "Leisure")

		if !event.IsDue(saturday, saturday) {
			t.Error("event should be due when the queried date is today")
		}
		if event.IsDue(friday, saturday) {
			t.Error("event should not be due on a past date")
		}
		if event.IsDue(saturday, friday) {
			t.Error("event should not be due on a future date")
		}
	})
}

func TestNewTrackerIdentity(t *testing.T) {
	a := NewTracker("Run", "🏃", 3, NewSchedule(time.Monday), "Health")
	b := NewTracker("Run", "🏃", 3, NewSchedule(time.Monday), "Health")

	if a.ID == b.ID {
		t.Error("each tracker should receive a fresh identifier")
	}
	if a.IsPinned {
		t.Error("new trackers start unpinned")
	}
	if a.OriginalCategory != "Health" {
		t.Errorf("expected original category Health, got %q", a.OriginalCategory)
	}
}
