package constants

// Error Codes
// These constants identify failure scenarios surfaced by the logbook API.

// Storage errors
const (
	ErrCodeUnavailable = "STORE_UNAVAILABLE"
	ErrCodePersistence = "PERSISTENCE_ERROR"
	ErrCodeNotFound    = "RECORD_NOT_FOUND"
)

// Import errors
const (
	ErrCodeImportEmpty     = "IMPORT_EMPTY"
	ErrCodeImportCollision = "IMPORT_COLLISION"
)

// Request errors
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeReminderDateMissing = "REMINDER_DATE_MISSING"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
)

// Error Messages
// Human-readable messages corresponding to error codes

var ErrorMessages = map[string]string{
	ErrCodeUnavailable:         "No storage context available. Please sign in.",
	ErrCodePersistence:         "The record store rejected the operation.",
	ErrCodeNotFound:            "Record not found.",
	ErrCodeImportEmpty:         "No data to import.",
	ErrCodeImportCollision:     "Some records conflict by ID. Confirm overwrite to proceed.",
	ErrCodeBadRequest:          "Malformed request.",
	ErrCodeReminderDateMissing: "Please select date & time.",
	ErrCodeUnauthorized:        "Unauthorized.",
}

// GetErrorMessage returns the message for a code, or a generic fallback.
func GetErrorMessage(code string) string {
	if msg, ok := ErrorMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred."
}
