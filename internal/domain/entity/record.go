package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackerRecord is a completion event: one tracker was marked done on
// one calendar day. At most one record exists per (tracker, day) pair.
// Records reference trackers by identifier; deleting a tracker must
// explicitly delete its records.
type TrackerRecord struct {
	TrackerID      uuid.UUID
	CompletionDate time.Time
	CreatedAt      time.Time
}

// NewTrackerRecord creates a completion record for the given tracker
// and date. The date is truncated to calendar-day granularity.
func NewTrackerRecord(trackerID uuid.UUID, date time.Time) *TrackerRecord {
	return &TrackerRecord{
		TrackerID:      trackerID,
		CompletionDate: DayOf(date),
		CreatedAt:      time.Now().UTC(),
	}
}
