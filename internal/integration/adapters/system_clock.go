// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/habit-tracker/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with wall time.
type systemClock struct{}

// NewSystemClock creates a new system clock instance.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current UTC time.
func (c *systemClock) Now() time.Time {
	return time.Now().UTC()
}
