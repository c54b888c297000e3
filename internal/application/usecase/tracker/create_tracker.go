// Package tracker contains tracker-related use cases.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateTrackerInput represents the input for tracker creation. An
// empty Schedule creates an irregular (one-off) event; IsHabit marks
// the tracker as a recurring habit, for which the schedule is required.
type CreateTrackerInput struct {
	Name         string
	Emoji        string
	Color        entity.Color
	Schedule     []time.Weekday
	IsHabit      bool
	CategoryName string
}

// CreateTrackerOutput represents the output of tracker creation.
type CreateTrackerOutput struct {
	Tracker *entity.Tracker
}

// CreateTrackerUseCase handles tracker creation logic.
type CreateTrackerUseCase struct {
	trackerRepo  adapter.TrackerRepository
	categoryRepo adapter.CategoryRepository
}

// NewCreateTrackerUseCase creates a new CreateTrackerUseCase instance.
func NewCreateTrackerUseCase(
	trackerRepo adapter.TrackerRepository,
	categoryRepo adapter.CategoryRepository,
) *CreateTrackerUseCase {
	return &CreateTrackerUseCase{
		trackerRepo:  trackerRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute performs the tracker creation. Validation is all-or-nothing:
// no entity is persisted unless every required field passes.
func (uc *CreateTrackerUseCase) Execute(ctx context.Context, input CreateTrackerInput) (*CreateTrackerOutput, error) {
	if err := validateTrackerFields(input.Name, input.Emoji, input.Color); err != nil {
		return nil, err
	}

	schedule := entity.NewSchedule(input.Schedule...)
	if input.IsHabit && schedule.IsEmpty() {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerScheduleEmpty,
			"a habit requires at least one weekday",
			domainerror.ErrTrackerScheduleEmpty,
		)
	}
	if !input.IsHabit {
		// Irregular events carry no schedule even if weekdays were sent.
		schedule = entity.Schedule{}
	}

	category, err := uc.categoryRepo.FindByName(ctx, input.CategoryName)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewCategoryError(
				domainerror.ErrCodeCategoryNotFound,
				"category does not exist",
				domainerror.ErrCategoryNotFound,
			)
		}
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to look up category", err)
	}

	tracker := entity.NewTracker(
		strings.TrimSpace(input.Name),
		input.Emoji,
		input.Color,
		schedule,
		category.Name,
	)

	if err := uc.trackerRepo.Create(ctx, tracker, category.Name); err != nil {
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to create tracker", err)
	}

	return &CreateTrackerOutput{Tracker: tracker}, nil
}

// validateTrackerFields gates creation and edit on the shared required
// scalar fields.
func validateTrackerFields(name, emoji string, color entity.Color) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerNameEmpty,
			"tracker name must not be empty",
			domainerror.ErrTrackerNameEmpty,
		)
	}
	if emoji == "" {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerEmojiMissing,
			"tracker emoji must be set",
			domainerror.ErrTrackerEmojiMissing,
		)
	}
	if !color.IsValid() {
		return domainerror.NewTrackerError(
			domainerror.ErrCodeTrackerColorInvalid,
			fmt.Sprintf("color must be a palette swatch between %d and %d", entity.MinColor, entity.MaxColor),
			domainerror.ErrTrackerColorInvalid,
		)
	}
	return nil
}
