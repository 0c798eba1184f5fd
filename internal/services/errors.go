package services

import (
	"fmt"

	"flighttrack/logbook/internal/constants"
)

// LogbookError carries an error code the API layer maps to an HTTP status.
type LogbookError struct {
	Code    string
	Message string
	Err     error

	// Collisions is set on IMPORT_COLLISION errors.
	Collisions int
}

func (e *LogbookError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *LogbookError) Unwrap() error {
	return e.Err
}

// NewLogbookError builds an error with the code's standard message.
func NewLogbookError(code string, err error) *LogbookError {
	return &LogbookError{
		Code:    code,
		Message: constants.GetErrorMessage(code),
		Err:     err,
	}
}
