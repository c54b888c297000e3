package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// TrackerModel represents the trackers table in the database.
// CategoryName is the current container (the pinned category while
// pinned); OriginalCategory records where an unpin returns the tracker.
type TrackerModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"type:varchar(50);not null"`
	Emoji            string    `gorm:"type:varchar(8);not null"`
	Color            int       `gorm:"not null"`
	Schedule         string    `gorm:"type:varchar(20)"`
	IsPinned         bool      `gorm:"not null;default:false"`
	CategoryName     string    `gorm:"type:varchar(50);not null;index"`
	OriginalCategory string    `gorm:"type:varchar(50);not null"`
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName returns the table name for the TrackerModel.
func (TrackerModel) TableName() string {
	return "trackers"
}

// ToEntity converts a TrackerModel to a domain Tracker entity.
func (m *TrackerModel) ToEntity() *entity.Tracker {
	return &entity.Tracker{
		ID:               m.ID,
		Name:             m.Name,
		Emoji:            m.Emoji,
		Color:            entity.Color(m.Color),
		Schedule:         scheduleFromColumn(m.Schedule),
		IsPinned:         m.IsPinned,
		OriginalCategory: m.OriginalCategory,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// TrackerFromEntity creates a TrackerModel from a domain Tracker entity
// placed under the given container category.
func TrackerFromEntity(tracker *entity.Tracker, categoryName string) *TrackerModel {
	return &TrackerModel{
		ID:               tracker.ID,
		Name:             tracker.Name,
		Emoji:            tracker.Emoji,
		Color:            int(tracker.Color),
		Schedule:         scheduleToColumn(tracker.Schedule),
		IsPinned:         tracker.IsPinned,
		CategoryName:     categoryName,
		OriginalCategory: tracker.OriginalCategory,
		CreatedAt:        tracker.CreatedAt,
		UpdatedAt:        tracker.UpdatedAt,
	}
}

// scheduleToColumn serializes a schedule as comma-joined weekday
// numbers (Sunday = 0). An empty schedule maps to the empty string.
func scheduleToColumn(schedule entity.Schedule) string {
	if schedule.IsEmpty() {
		return ""
	}
	parts := make([]string, len(schedule))
	for i, day := range schedule {
		parts[i] = strconv.Itoa(int(day))
	}
	return strings.Join(parts, ",")
}

func scheduleFromColumn(column string) entity.Schedule {
	if column == "" {
		return entity.Schedule{}
	}
	var days []time.Weekday
	for _, part := range strings.Split(column, ",") {
		n, err := strconv.Atoi(part)
		if err != nil {
			continue
		}
		days = append(days, time.Weekday(n))
	}
	return entity.NewSchedule(days...)
}
