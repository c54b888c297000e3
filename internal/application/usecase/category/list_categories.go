package category

import (
	"context"
	"sort"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesOutput represents the output of listing categories.
// Categories come with their member trackers nested, trackers sorted by
// name; the pinned category, when present, is listed first.
type ListCategoriesOutput struct {
	Categories []*entity.Category
}

// ListCategoriesUseCase handles listing categories with nested trackers.
type ListCategoriesUseCase struct {
	categoryRepo   adapter.CategoryRepository
	trackerRepo    adapter.TrackerRepository
	pinnedCategory string
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(
	categoryRepo adapter.CategoryRepository,
	trackerRepo adapter.TrackerRepository,
	pinnedCategory string,
) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo:   categoryRepo,
		trackerRepo:    trackerRepo,
		pinnedCategory: pinnedCategory,
	}
}

// Execute retrieves all categories with their trackers attached.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, _ ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories, err := uc.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to fetch categories", err)
	}

	trackers, err := uc.trackerRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to fetch trackers", err)
	}

	grouped := GroupTrackers(trackers, uc.pinnedCategory)
	for _, category := range categories {
		category.Trackers = grouped[category.Name]
	}

	// Pinned category first, the rest stay name-sorted.
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Name == uc.pinnedCategory && categories[j].Name != uc.pinnedCategory
	})

	return &ListCategoriesOutput{Categories: categories}, nil
}

// GroupTrackers buckets trackers by their containing category: the
// pinned category for pinned trackers, the original category otherwise.
// Buckets are sorted by tracker name ascending.
func GroupTrackers(trackers []*entity.Tracker, pinnedCategory string) map[string][]*entity.Tracker {
	grouped := make(map[string][]*entity.Tracker)
	for _, tracker := range trackers {
		container := tracker.OriginalCategory
		if tracker.IsPinned {
			container = pinnedCategory
		}
		grouped[container] = append(grouped[container], tracker)
	}
	for _, bucket := range grouped {
		sort.Slice(bucket, func(i, j int) bool { return bucket[i].Name < bucket[j].Name })
	}
	return grouped
}
