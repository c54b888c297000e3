package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/application/usecase/category"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/domain/valueobject"
)

// ListTrackersInput represents the input for the tracker list pipeline.
type ListTrackersInput struct {
	Date   time.Time
	Filter valueobject.TrackerFilter
	Search string
}

// TrackerItem is a tracker enriched with its completion state for the
// selected date and its all-time completed-day count.
type TrackerItem struct {
	Tracker       *entity.Tracker
	IsCompleted   bool
	CompletedDays int64
}

// CategoryGroup is one category section of the visible list.
type CategoryGroup struct {
	Name     string
	Trackers []TrackerItem
}

// ListTrackersOutput represents the output of the list pipeline. Date
// is the effective selected date (forced to today by FilterToday). An
// empty Categories slice signals the empty state.
type ListTrackersOutput struct {
	Date       time.Time
	Categories []CategoryGroup
}

// ListTrackersUseCase produces the visible (category, trackers) list
// for a date, status filter and optional search text. The pipeline is
// applied in order: recurrence filter, status filter, text search;
// the search narrows the filtered output rather than re-widening it.
type ListTrackersUseCase struct {
	trackerRepo    adapter.TrackerRepository
	categoryRepo   adapter.CategoryRepository
	recordRepo     adapter.RecordRepository
	clock          adapter.Clock
	pinnedCategory string
}

// NewListTrackersUseCase creates a new ListTrackersUseCase instance.
func NewListTrackersUseCase(
	trackerRepo adapter.TrackerRepository,
	categoryRepo adapter.CategoryRepository,
	recordRepo adapter.RecordRepository,
	clock adapter.Clock,
	pinnedCategory string,
) *ListTrackersUseCase {
	return &ListTrackersUseCase{
		trackerRepo:    trackerRepo,
		categoryRepo:   categoryRepo,
		recordRepo:     recordRepo,
		clock:          clock,
		pinnedCategory: pinnedCategory,
	}
}

// Execute runs the filter pipeline over the whole dataset in memory.
func (uc *ListTrackersUseCase) Execute(ctx context.Context, input ListTrackersInput) (*ListTrackersOutput, error) {
	filter := input.Filter
	if filter == "" {
		filter = valueobject.FilterAll
	}
	if !filter.IsValid() {
		return nil, domainerror.NewTrackerError(
			domainerror.ErrCodeInvalidFilter,
			fmt.Sprintf("unknown filter %q", input.Filter),
			domainerror.ErrInvalidFilter,
		)
	}

	now := uc.clock.Now()
	date := input.Date
	if date.IsZero() || filter == valueobject.FilterToday {
		date = now
	}
	day := entity.DayOf(date)

	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to fetch categories", err)
	}

	trackers, err := uc.trackerRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to fetch trackers", err)
	}

	grouped := category.GroupTrackers(trackers, uc.pinnedCategory)

	// Pinned category first, the rest name-sorted from the repository.
	ordered := make([]*entity.Category, 0, len(categories))
	for _, cat := range categories {
		if cat.Name == uc.pinnedCategory {
			ordered = append([]*entity.Category{cat}, ordered...)
		} else {
			ordered = append(ordered, cat)
		}
	}

	search := strings.ToLower(strings.TrimSpace(input.Search))

	groups := make([]CategoryGroup, 0, len(ordered))
	for _, cat := range ordered {
		group := CategoryGroup{Name: cat.Name}
		for _, t := range grouped[cat.Name] {
			if !t.IsDue(day, now) {
				continue
			}

			completed, err := uc.recordRepo.Exists(ctx, t.ID, day)
			if err != nil {
				return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to check completion state", err)
			}
			if filter == valueobject.FilterCompleted && !completed {
				continue
			}
			if filter == valueobject.FilterNotCompleted && completed {
				continue
			}

			if search != "" && !strings.Contains(strings.ToLower(t.Name), search) {
				continue
			}

			count, err := uc.recordRepo.Count(ctx, t.ID)
			if err != nil {
				return nil, domainerror.NewTrackerError(domainerror.ErrCodeTrackerStorage, "failed to count completion records", err)
			}

			group.Trackers = append(group.Trackers, TrackerItem{
				Tracker:       t,
				IsCompleted:   completed,
				CompletedDays: count,
			})
		}
		if len(group.Trackers) > 0 {
			groups = append(groups, group)
		}
	}

	return &ListTrackersOutput{
		Date:       day,
		Categories: groups,
	}, nil
}
