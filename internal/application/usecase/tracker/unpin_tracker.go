package tracker

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UnpinTrackerInput represents the input for unpinning a tracker.
type UnpinTrackerInput struct {
	TrackerID uuid.UUID
}

// UnpinTrackerOutput represents the output of unpinning a tracker.
type UnpinTrackerOutput struct {
	Tracker *entity.Tracker
}

// UnpinTrackerUseCase returns a tracker from the pinned category to its
// original category. When the original category no longer exists the
// operation fails with an explicit NotFound error instead of silently
// dropping the tracker.
type UnpinTrackerUseCase struct {
	trackerRepo  adapter.TrackerRepository
	categoryRepo adapter.CategoryRepository
}

// NewUnpinTrackerUseCase creates a new UnpinTrackerUseCase instance.
func NewUnpinTrackerUseCase(
	trackerRepo adapter.TrackerRepository,
	categoryRepo adapter.CategoryRepository,
) *UnpinTrackerUseCase {
	return &UnpinTrackerUseCase{
		trackerRepo:  trackerRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute unpins the tracker. Unpinning an unpinned tracker is a no-op.
func (uc *UnpinTrackerUseCase) Execute(ctx context.Context, input UnpinTrackerInput) (*UnpinTrackerOutput, error) {
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

	if !tracker.IsPinned {
		return &UnpinTrackerOutput{Tracker: tracker}, nil
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, tracker.OriginalCategory)
	if err != nil {
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to look up original category", err)
	}
	if !exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"original category no longer exists",
			domainerror.ErrCategoryNotFound,
		)
	}

	tracker.IsPinned = false
	if err := uc.trackerRepo.UpdateAndMove(ctx, tracker, tracker.OriginalCategory); err != nil {
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to unpin tracker", err)
	}

	return &UnpinTrackerOutput{Tracker: tracker}, nil
}
