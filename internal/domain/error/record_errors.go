package error

import "errors"

// Completion record domain errors.
var (
	// ErrRecordInFuture is returned when toggling completion for a date
	// strictly after today.
	ErrRecordInFuture = errors.New("cannot complete a tracker for a future date")
)

// RecordErrorCode defines error codes for completion record errors.
// Format: REC-XXYYYY where XX is the class and YYYY the specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeRecordInFuture RecordErrorCode = "REC-010001"
	// Storage errors (02XXXX)
	ErrCodeRecordStorage RecordErrorCode = "REC-020001"
)

// RecordError represents a completion record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
