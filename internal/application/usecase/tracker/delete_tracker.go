package tracker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// DeleteTrackerInput represents the input for deleting a tracker.
type DeleteTrackerInput struct {
	TrackerID uuid.UUID
}

// DeleteTrackerOutput represents the output of deleting a tracker.
type DeleteTrackerOutput struct{}

// DeleteTrackerUseCase removes a tracker together with every completion
// record referencing it. The cascade runs in one storage transaction so
// a failure can never strip a tracker of its history while leaving the
// tracker behind.
type DeleteTrackerUseCase struct {
	trackerRepo adapter.TrackerRepository
	statsCache  adapter.StatsCache
}

// NewDeleteTrackerUseCase creates a new DeleteTrackerUseCase instance.
func NewDeleteTrackerUseCase(
	trackerRepo adapter.TrackerRepository,
	statsCache adapter.StatsCache,
) *DeleteTrackerUseCase {
	return &DeleteTrackerUseCase{
		trackerRepo: trackerRepo,
		statsCache:  statsCache,
	}
}

// Execute performs the tracker deletion with its record cascade.
func (uc *DeleteTrackerUseCase) Execute(ctx context.Context, input DeleteTrackerInput) (*DeleteTrackerOutput, error) {
	if err := uc.trackerRepo.DeleteWithRecords(ctx, input.TrackerID); err != nil {
		if errors.Is(err, domainerror.ErrTrackerNotFound) {
			return nil, domainerror.NewTrackerError(
				domainerror.ErrCodeTrackerNotFound,
				"tracker does not exist",
				domainerror.ErrTrackerNotFound,
			)
		}
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerStorage,
			"failed to delete tracker",
			err,
		)
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.Invalidate(ctx); err != nil {
			slog.Warn("Failed to invalidate statistics cache", "error", err)
		}
	}

	return &DeleteTrackerOutput{}, nil
}
