package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// RecordModel represents the tracker_records table in the database.
// The unique index enforces the at-most-one-record-per-day invariant.
type RecordModel struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	TrackerID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tracker_day"`
	CompletionDate time.Time `gorm:"not null;uniqueIndex:idx_tracker_day"`
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the RecordModel.
func (RecordModel) TableName() string {
	return "tracker_records"
}

// ToEntity converts a RecordModel to a domain TrackerRecord entity.
func (m *RecordModel) ToEntity() *entity.TrackerRecord {
	return &entity.TrackerRecord{
		TrackerID:      m.TrackerID,
		CompletionDate: m.CompletionDate,
		CreatedAt:      m.CreatedAt,
	}
}

// RecordFromEntity creates a RecordModel from a domain TrackerRecord entity.
func RecordFromEntity(record *entity.TrackerRecord) *RecordModel {
	return &RecordModel{
		TrackerID:      record.TrackerID,
		CompletionDate: record.CompletionDate,
		CreatedAt:      record.CreatedAt,
	}
}
