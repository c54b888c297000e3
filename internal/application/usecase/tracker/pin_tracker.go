package tracker

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// PinTrackerInput represents the input for pinning a tracker.
type PinTrackerInput struct {
	TrackerID uuid.UUID
}

// PinTrackerOutput represents the output of pinning a tracker.
type PinTrackerOutput struct {
	Tracker *entity.Tracker
}

// PinTrackerUseCase moves a tracker into the reserved pinned category.
// The tracker's original category is left recorded so unpinning can
// restore its placement.
type PinTrackerUseCase struct {
	trackerRepo    adapter.TrackerRepository
	pinnedCategory string
}

// NewPinTrackerUseCase creates a new PinTrackerUseCase instance.
func NewPinTrackerUseCase(trackerRepo adapter.TrackerRepository, pinnedCategory string) *PinTrackerUseCase {
	return &PinTrackerUseCase{
		trackerRepo:    trackerRepo,
		pinnedCategory: pinnedCategory,
	}
}

// Execute pins the tracker. Pinning an already pinned tracker is a no-op.
func (uc *PinTrackerUseCase) Execute(ctx context.Context, input PinTrackerInput) (*PinTrackerOutput, error) {
	tracker, err := uc.trackerRepo.FindByID(ctx, input.TrackerID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTrackerNotFound) {
			return nil, domainerror.NewTrackerError(
				domainerror.ErrCodeTrackerNotFound,
				"tracker does not exist",
				domainerror.ErrTrackerNotFound,
			)
		}
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to look up tracker", err)
	}

	if tracker.IsPinned {
		return &PinTrackerOutput{Tracker: tracker}, nil
	}

	tracker.IsPinned = true
	if err := uc.trackerRepo.UpdateAndMove(ctx, tracker, uc.pinnedCategory); err != nil {
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to pin tracker", err)
	}

	return &PinTrackerOutput{Tracker: tracker}, nil
}
