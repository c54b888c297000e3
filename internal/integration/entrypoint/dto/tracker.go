package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/usecase/tracker"
	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateTrackerRequest represents the request body for tracker creation.
// Schedule carries weekday numbers (Sunday = 0 through Saturday = 6)
// and is required when is_habit is true.
type CreateTrackerRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Emoji    string `json:"emoji" binding:"required"`
	Color    int    `json:"color" binding:"required"`
	Schedule []int  `json:"schedule,omitempty"`
	IsHabit  bool   `json:"is_habit"`
	Category string `json:"category" binding:"required"`
}

// UpdateTrackerRequest represents the request body for editing a tracker.
type UpdateTrackerRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=50"`
	Emoji    string `json:"emoji" binding:"required"`
	Color    int    `json:"color" binding:"required"`
	Schedule []int  `json:"schedule,omitempty"`
	Category string `json:"category" binding:"required"`
}

// TrackerResponse represents a single tracker in API responses.
type TrackerResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Emoji            string    `json:"emoji"`
	Color            int       `json:"color"`
	Schedule         []int     `json:"schedule"`
	IsHabit          bool      `json:"is_habit"`
	IsPinned         bool      `json:"is_pinned"`
	OriginalCategory string    `json:"original_category"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TrackerItemResponse is a tracker with completion state for the
// selected date, as rendered in the visible list.
type TrackerItemResponse struct {
	TrackerResponse
	IsCompleted   bool  `json:"is_completed"`
	CompletedDays int64 `json:"completed_days"`
}

// TrackerGroupResponse is one category section of the visible list.
type TrackerGroupResponse struct {
	Category string                `json:"category"`
	Trackers []TrackerItemResponse `json:"trackers"`
}

// ListTrackersResponse represents the response of the list pipeline.
type ListTrackersResponse struct {
	Date       string                 `json:"date"`
	Categories []TrackerGroupResponse `json:"categories"`
}

// ToTrackerResponse converts a domain Tracker entity to a TrackerResponse DTO.
func ToTrackerResponse(t *entity.Tracker) TrackerResponse {
	schedule := make([]int, len(t.Schedule))
	for i, day := range t.Schedule {
		schedule[i] = int(day)
	}
	return TrackerResponse{
		ID:               t.ID.String(),
		Name:             t.Name,
		Emoji:            t.Emoji,
		Color:            int(t.Color),
		Schedule:         schedule,
		IsHabit:          t.IsHabit(),
		IsPinned:         t.IsPinned,
		OriginalCategory: t.OriginalCategory,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

// ToListTrackersResponse converts the list pipeline output to a response DTO.
func ToListTrackersResponse(output *tracker.ListTrackersOutput) ListTrackersResponse {
	groups := make([]TrackerGroupResponse, len(output.Categories))
	for i, group := range output.Categories {
		items := make([]TrackerItemResponse, len(group.Trackers))
		for j, item := range group.Trackers {
			items[j] = TrackerItemResponse{
				TrackerResponse: ToTrackerResponse(item.Tracker),
				IsCompleted:     item.IsCompleted,
				CompletedDays:   item.CompletedDays,
			}
		}
		groups[i] = TrackerGroupResponse{
			Category: group.Name,
			Trackers: items,
		}
	}
	return ListTrackersResponse{
		Date:       output.Date.Format("2006-01-02"),
		Categories: groups,
	}
}

// ToWeekdays converts request weekday numbers to time.Weekday values.
func ToWeekdays(schedule []int) []time.Weekday {
	days := make([]time.Weekday, len(schedule))
	for i, n := range schedule {
		days[i] = time.Weekday(n)
	}
	return days
}
