package adapter

import "time"

// Clock supplies "now" to use cases so that due-date evaluation and the
// future-date completion guard are testable.
type Clock interface {
	Now() time.Time
}
