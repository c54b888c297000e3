package tracker

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// UpdateTrackerInput represents the input for editing a tracker. All
// fields are submitted together; validation is all-or-nothing.
type UpdateTrackerInput struct {
	TrackerID    uuid.UUID
	Name         string
	Emoji        string
	Color        entity.Color
	Schedule     []time.Weekday
	CategoryName string
}

// UpdateTrackerOutput represents the output of editing a tracker.
type UpdateTrackerOutput struct {
	Tracker *entity.Tracker
}

// UpdateTrackerUseCase handles tracker edits, including category
// re-assignment while respecting the pinned-category invariant.
type UpdateTrackerUseCase struct {
	trackerRepo  adapter.TrackerRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateTrackerUseCase creates a new UpdateTrackerUseCase instance.
func NewUpdateTrackerUseCase(
	trackerRepo adapter.TrackerRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTrackerUseCase {
	return &UpdateTrackerUseCase{
		trackerRepo:  trackerRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the tracker edit.
func (uc *UpdateTrackerUseCase) Execute(ctx context.Context, input UpdateTrackerInput) (*UpdateTrackerOutput, error) {
	if err := validateTrackerFields(input.Name, input.Emoji, input.Color); err != nil {
		return nil, err
	}

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

	schedule := entity.NewSchedule(input.Schedule...)
	if tracker.IsHabit() && schedule.IsEmpty() {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerScheduleEmpty,
			"a habit requires at least one weekday",
			domainerror.ErrTrackerScheduleEmpty,
		)
	}
	if !tracker.IsHabit() {
		schedule = entity.Schedule{}
	}

	tracker.Name = input.Name
	tracker.Emoji = input.Emoji
	tracker.Color = input.Color
	tracker.Schedule = schedule
	tracker.UpdatedAt = time.Now().UTC()

	switch {
	case input.CategoryName == tracker.OriginalCategory:
		// Bookkeeping already points at the requested category; no
		// membership move regardless of pin state.
		if err := uc.trackerRepo.Update(ctx, tracker); err != nil {
			return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to update tracker", err)
		}
	case tracker.IsPinned:
		// The actual container stays the pinned category; only the
		// return-to bookkeeping changes.
		if err := uc.requireCategory(ctx, input.CategoryName); err != nil {
			return nil, err
		}
		tracker.OriginalCategory = input.CategoryName
		if err := uc.trackerRepo.Update(ctx, tracker); err != nil {
			return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to update tracker", err)
		}
	default:
		if err := uc.requireCategory(ctx, input.CategoryName); err != nil {
			return nil, err
		}
		tracker.OriginalCategory = input.CategoryName
		if err := uc.trackerRepo.UpdateAndMove(ctx, tracker, input.CategoryName); err != nil {
			return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to move tracker", err)
		}
	}

	return &UpdateTrackerOutput{Tracker: tracker}, nil
}

func (uc *UpdateTrackerUseCase) requireCategory(ctx context.Context, name string) error {
	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to look up category", err)
	}
	if !exists {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNotFound,
			"category does not exist",
			domainerror.ErrCategoryNotFound,
		)
	}
	return nil
}
