// Package error defines domain-specific errors for the habit tracker application.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNameEmpty is returned when the category name is empty.
	ErrCategoryNameEmpty = errors.New("category name is empty")

	// ErrCategoryNameReserved is returned when the category name collides with the reserved pinned category.
	ErrCategoryNameReserved = errors.New("category name is reserved")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the class and YYYY the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameEmpty    CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameReserved CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNameExists   CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010004"
	// Storage errors (02XXXX)
	ErrCodeCategoryStorage CategoryErrorCode = "CAT-020001"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
