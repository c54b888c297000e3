package adapter

import "context"

// StatsCache caches derived completion statistics. Implementations may
// be unavailable at runtime; callers fall back to the store on a miss
// or error.
type StatsCache interface {
	// GetCompletedTotal returns the cached total and whether it was present.
	GetCompletedTotal(ctx context.Context) (int64, bool, error)

	// SetCompletedTotal stores the total with the configured TTL.
	SetCompletedTotal(ctx context.Context, total int64) error

	// Invalidate drops the cached statistics after a completion change.
	Invalidate(ctx context.Context) error
}
