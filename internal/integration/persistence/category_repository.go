// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category in the database.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByName retrieves a category by its name.
func (r *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindAll retrieves all categories ordered by name ascending.
func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// Rename changes a category's name. Tracker rows referencing the old
// name are updated in the same transaction so membership is preserved.
func (r *categoryRepository) Rename(ctx context.Context, oldName, newName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.CategoryModel{}).
			Where("name = ?", oldName).
			Update("name", newName)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrCategoryNotFound
		}

		if err := tx.Model(&model.TrackerModel{}).
			Where("category_name = ?", oldName).
			Update("category_name", newName).Error; err != nil {
			return err
		}
		return tx.Model(&model.TrackerModel{}).
			Where("original_category = ?", oldName).
			Update("original_category", newName).Error
	})
}

// ExistsByName checks if a category with the given name exists.
func (r *categoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("name = ?", name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
