package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// TrackerRepository defines the interface for tracker persistence operations.
type TrackerRepository interface {
	// Create persists a new tracker under the named category.
	Create(ctx context.Context, tracker *entity.Tracker, categoryName string) error

	// FindByID retrieves a tracker by its identifier. Returns
	// domainerror.ErrTrackerNotFound when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tracker, error)

	// FindAll retrieves every tracker in the store.
	FindAll(ctx context.Context) ([]*entity.Tracker, error)

	// Update persists the tracker's scalar fields and pin state without
	// changing its category membership.
	Update(ctx context.Context, tracker *entity.Tracker) error

	// UpdateAndMove persists the tracker and reassigns it to the named
	// category in a single transaction.
	UpdateAndMove(ctx context.Context, tracker *entity.Tracker, categoryName string) error

	// DeleteWithRecords removes a tracker and every completion record
	// referencing it in a single transaction. Returns
	// domainerror.ErrTrackerNotFound when the tracker is absent.
	DeleteWithRecords(ctx context.Context, id uuid.UUID) error
}
