// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database. The
// name is the primary key; no surrogate identifier is modeled.
type CategoryModel struct {
	Name      string    `gorm:"type:varchar(50);primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		Name:      m.Name,
		Trackers:  []*entity.Tracker{},
		CreatedAt: m.CreatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}
