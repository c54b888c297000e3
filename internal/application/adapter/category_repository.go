// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
// Categories are keyed by name; there is no separate identifier.
type CategoryRepository interface {
	// Create creates a new category in the store.
	Create(ctx context.Context, category *entity.Category) error

	// FindByName retrieves a category by its name. Returns
	// domainerror.ErrCategoryNotFound when absent.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll retrieves all categories ordered by name ascending,
	// without nested trackers.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Rename changes a category's name, preserving membership.
	Rename(ctx context.Context, oldName, newName string) error

	// ExistsByName checks if a category with the given name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
