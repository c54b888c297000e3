package mock

import (
	"sync"
	"time"
)

// Clock is a settable clock for scenarios that pin "today".
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts at the current wall time.
func NewClock() *Clock {
	return &Clock{now: time.Now().UTC()}
}

// Set pins the clock to the given instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Now returns the pinned instant.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}
