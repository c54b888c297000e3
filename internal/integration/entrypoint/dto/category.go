package dto

import (
	"time"

	"github.com/habit-tracker/backend/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Name      string            `json:"name"`
	Trackers  []TrackerResponse `json:"trackers"`
	CreatedAt time.Time         `json:"created_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	trackers := make([]TrackerResponse, len(cat.Trackers))
	for i, t := range cat.Trackers {
		trackers[i] = ToTrackerResponse(t)
	}
	return CategoryResponse{
		Name:      cat.Name,
		Trackers:  trackers,
		CreatedAt: cat.CreatedAt,
	}
}

// ToCategoryListResponse converts a list of categories to CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: out,
	}
}
