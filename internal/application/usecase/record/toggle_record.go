// Package record contains completion ledger use cases.
package record

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// ToggleRecordInput represents the input for toggling completion.
type ToggleRecordInput struct {
	TrackerID uuid.UUID
	Date      time.Time
}

// ToggleRecordOutput represents the output of toggling completion.
type ToggleRecordOutput struct {
	IsCompleted   bool
	CompletedDays int64
}

// ToggleRecordUseCase flips the completion state of a tracker for a
// calendar day. Completing a day strictly in the future is rejected.
type ToggleRecordUseCase struct {
	recordRepo  adapter.RecordRepository
	trackerRepo adapter.TrackerRepository
	clock       adapter.Clock
	statsCache  adapter.StatsCache
}

// NewToggleRecordUseCase creates a new ToggleRecordUseCase instance.
func NewToggleRecordUseCase(
	recordRepo adapter.RecordRepository,
	trackerRepo adapter.TrackerRepository,
	clock adapter.Clock,
	statsCache adapter.StatsCache,
) *ToggleRecordUseCase {
	return &ToggleRecordUseCase{
		recordRepo:  recordRepo,
		trackerRepo: trackerRepo,
		clock:       clock,
		statsCache:  statsCache,
	}
}

// Execute toggles completion and returns the new state with the
// tracker's completed-day count.
func (uc *ToggleRecordUseCase) Execute(ctx context.Context, input ToggleRecordInput) (*ToggleRecordOutput, error) {
	day := entity.DayOf(input.Date)
	today := entity.DayOf(uc.clock.Now())
	if day.After(today) {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeRecordInFuture,
			"completion cannot be recorded for a future date",
			domainerror.ErrRecordInFuture,
		)
	}

	if _, err := uc.trackerRepo.FindByID(ctx, input.TrackerID); err != nil {
		if errors.Is(err, domainerror.ErrTrackerNotFound) {
			return nil, domainerror.NewTrackerError(
				domainerror.ErrCodeTrackerNotFound,
				"tracker does not exist",
				domainerror.ErrTrackerNotFound,
			)
		}
		return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordStorage, "failed to look up tracker", err)
	}

	completed, err := uc.recordRepo.Toggle(ctx, input.TrackerID, day)
	if err != nil {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordStorage, "failed to toggle completion record", err)
	}

	count, err := uc.recordRepo.Count(ctx, input.TrackerID)
	if err != nil {
		return nil, domainerror.NewRecordError(domainerror.ErrCodeRecordStorage, "failed to count completion records", err)
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.Invalidate(ctx); err != nil {
			slog.Warn("Failed to invalidate statistics cache", "error", err)
		}
	}

	return &ToggleRecordOutput{
		IsCompleted:   completed,
		CompletedDays: count,
	}, nil
}
