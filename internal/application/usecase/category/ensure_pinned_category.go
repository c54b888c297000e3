package category

import (
	"context"
	"log/slog"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// PinnedCategorySettingKey is the settings key recording the last-known
// localized name of the pinned category.
const PinnedCategorySettingKey = "pinned_category_name"

// EnsurePinnedCategoryUseCase guarantees the reserved pinned category
// exists, creating it lazily on first launch. When the configured
// localized name differs from the last-known one, the stored category
// is renamed in place so pinned trackers keep their membership.
type EnsurePinnedCategoryUseCase struct {
	categoryRepo   adapter.CategoryRepository
	settingRepo    adapter.SettingRepository
	pinnedCategory string
}

// NewEnsurePinnedCategoryUseCase creates a new EnsurePinnedCategoryUseCase instance.
func NewEnsurePinnedCategoryUseCase(
	categoryRepo adapter.CategoryRepository,
	settingRepo adapter.SettingRepository,
	pinnedCategory string,
) *EnsurePinnedCategoryUseCase {
	return &EnsurePinnedCategoryUseCase{
		categoryRepo:   categoryRepo,
		settingRepo:    settingRepo,
		pinnedCategory: pinnedCategory,
	}
}

// Execute runs the lazy creation and locale migration. Called once at startup.
func (uc *EnsurePinnedCategoryUseCase) Execute(ctx context.Context) error {
	previousName, err := uc.settingRepo.Get(ctx, PinnedCategorySettingKey)
	if err != nil {
		return domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to read pinned category setting", err)
	}

	if previousName != "" && previousName != uc.pinnedCategory {
		exists, err := uc.categoryRepo.ExistsByName(ctx, previousName)
		if err != nil {
			return domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to look up previous pinned category", err)
		}
		if exists {
			taken, err := uc.categoryRepo.ExistsByName(ctx, uc.pinnedCategory)
			if err != nil {
				return domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to check pinned category name availability", err)
			}
			if taken {
				// A user-created category already carries the new name.
				// Renaming onto it would violate the name uniqueness, so
				// keep both; pinned trackers group by their pin flag, not
				// by the container name.
				slog.Warn("Pinned category name already in use, skipping rename",
					"previous", previousName,
					"current", uc.pinnedCategory,
				)
			} else {
				if err := uc.categoryRepo.Rename(ctx, previousName, uc.pinnedCategory); err != nil {
					return domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to migrate pinned category name", err)
				}
				slog.Info("Pinned category renamed for locale change",
					"previous", previousName,
					"current", uc.pinnedCategory,
				)
			}
		}
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, uc.pinnedCategory)
	if err != nil {
		return domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to check pinned category existence", err)
	}
	if !exists {
		if err := uc.categoryRepo.Create(ctx, entity.NewCategory(uc.pinnedCategory)); err != nil {
			return domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to create pinned category", err)
		}
		slog.Info("Pinned category created", "name", uc.pinnedCategory)
	}

	if err := uc.settingRepo.Set(ctx, PinnedCategorySettingKey, uc.pinnedCategory); err != nil {
		return domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to store pinned category setting", err)
	}

	return nil
}
