package entity

import "time"

// Category is a named, ordered grouping of trackers. The name is the
// natural key; no separate identifier is modeled.
type Category struct {
	Name      string
	Trackers  []*Tracker
	CreatedAt time.Time
}

// NewCategory creates a new Category entity with no trackers.
func NewCategory(name string) *Category {
	return &Category{
		Name:      name,
		Trackers:  []*Tracker{},
		CreatedAt: time.Now().UTC(),
	}
}
