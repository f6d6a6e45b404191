package schedule

import "errors"

// ValidationError reports missing or malformed request fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errValidation(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	// ErrSlotNotFound indicates there is no published slot record for the day.
	ErrSlotNotFound = errors.New("no available slot found for this date")
	// ErrInterviewNotFound indicates an unknown interview id.
	ErrInterviewNotFound = errors.New("interview not found")
	// ErrTimeNotAvailable indicates the requested time is not in the
	// published set for the day.
	ErrTimeNotAvailable = errors.New("selected time slot is not available")
	// ErrSlotTaken indicates another interview already occupies the
	// (day, time) pair.
	ErrSlotTaken = errors.New("slot already booked, choose a different time")
	// ErrSlotConflict indicates an incoming time already exists in the
	// stored set for the day.
	ErrSlotConflict = errors.New("one or more time slots already exist for this date")
)
