// Package category contains category-related use cases.
package category

import (
	"context"
	"strings"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo   adapter.CategoryRepository
	pinnedCategory string
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository, pinnedCategory string) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo:   categoryRepo,
		pinnedCategory: pinnedCategory,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameEmpty,
			"category name must not be empty",
			domainerror.ErrCategoryNameEmpty,
		)
	}

	// The pinned category is system-reserved; user categories must not
	// collide with it, case-insensitively.
	if strings.EqualFold(name, uc.pinnedCategory) {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameReserved,
			"category name is reserved for pinned trackers",
			domainerror.ErrCategoryNameReserved,
		)
	}

	exists, err := uc.categoryRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to check category name existence", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameExists,
			"a category with this name already exists",
			domainerror.ErrCategoryNameExists,
		)
	}

	category := entity.NewCategory(name)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, domainerror.NewCategoryError(domainerror.ErrCodeCategoryStorage, "failed to create category", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
