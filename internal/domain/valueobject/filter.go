// Package valueobject contains domain value objects for the habit tracker.
package valueobject

// TrackerFilter selects which trackers the list pipeline keeps after
// the recurrence filter has been applied.
type TrackerFilter string

const (
	// FilterAll keeps every tracker due on the selected date.
	FilterAll TrackerFilter = "all"
	// FilterToday forces the selected date to today and locks date
	// selection; otherwise identical to FilterAll.
	FilterToday TrackerFilter = "today"
	// FilterCompleted keeps trackers with a completion record for the
	// selected date.
	FilterCompleted TrackerFilter = "completed"
	// FilterNotCompleted keeps trackers without a completion record for
	// the selected date.
	FilterNotCompleted TrackerFilter = "not_completed"
)

// IsValid reports whether the filter is one of the known values.
func (f TrackerFilter) IsValid() bool {
	switch f {
	case FilterAll, FilterToday, FilterCompleted, FilterNotCompleted:
		return true
	}
	return false
}
