package error

import "errors"

// Tracker domain errors.
var (
	// ErrTrackerNotFound is returned when a tracker is not found in the store.
	ErrTrackerNotFound = errors.New("tracker not found")

	// ErrTrackerNameEmpty is returned when the tracker name is empty.
	ErrTrackerNameEmpty = errors.New("tracker name is empty")

	// ErrTrackerEmojiMissing is returned when no emoji label is set.
	ErrTrackerEmojiMissing = errors.New("tracker emoji is missing")

	// ErrTrackerColorInvalid is returned when the color is not a palette swatch.
	ErrTrackerColorInvalid = errors.New("tracker color is not in the palette")

	// ErrTrackerScheduleEmpty is returned when a habit is created without weekdays.
	ErrTrackerScheduleEmpty = errors.New("habit schedule is empty")

	// ErrInvalidFilter is returned when an unknown list filter is requested.
	ErrInvalidFilter = errors.New("invalid tracker filter")
)

// TrackerErrorCode defines error codes for tracker errors.
// Format: TRK-XXYYYY where XX is the class and YYYY the specific error.
type TrackerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeTrackerNameEmpty     TrackerErrorCode = "TRK-010001"
	ErrCodeTrackerEmojiMissing  TrackerErrorCode = "TRK-010002"
	ErrCodeTrackerColorInvalid  TrackerErrorCode = "TRK-010003"
	ErrCodeTrackerScheduleEmpty TrackerErrorCode = "TRK-010004"
	ErrCodeTrackerNotFound      TrackerErrorCode = "TRK-010005"
	ErrCodeInvalidFilter        TrackerErrorCode = "TRK-010006"
	// Storage errors (02XXXX)
	ErrCodeTrackerStorage TrackerErrorCode = "TRK-020001"
)

// TrackerError represents a tracker error with code and message.
type TrackerError struct {
	Code    TrackerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TrackerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TrackerError) Unwrap() error {
	return e.Err
}

// NewTrackerError creates a new TrackerError with the given code and message.
func NewTrackerError(code TrackerErrorCode, message string, err error) *TrackerError {
	return &TrackerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
