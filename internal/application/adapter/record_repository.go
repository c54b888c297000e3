package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecordRepository defines the interface for completion record persistence.
// Dates are stored at calendar-day granularity; at most one record exists
// per (tracker, day) pair.
type RecordRepository interface {
	// Create stores a completion record for the tracker and day.
	Create(ctx context.Context, trackerID uuid.UUID, date time.Time) error

	// Delete removes the completion record for the tracker and day.
	Delete(ctx context.Context, trackerID uuid.UUID, date time.Time) error

	// Exists checks whether a completion record exists for the pair.
	Exists(ctx context.Context, trackerID uuid.UUID, date time.Time) (bool, error)

	// Toggle flips the completion state for the pair inside a single
	// transaction and returns the new state.
	Toggle(ctx context.Context, trackerID uuid.UUID, date time.Time) (bool, error)

	// Count returns the number of records ever created for the tracker.
	Count(ctx context.Context, trackerID uuid.UUID) (int64, error)

	// CountAll returns the total number of completion records.
	CountAll(ctx context.Context) (int64, error)
}
