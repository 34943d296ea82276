package models

import "errors"

// ValidationError reports a field value that breaks a domain invariant.
// Hooks return it before any row is written; handlers map it to a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Allowed status values, shared between models and the seed utility.
var (
	BookingStatuses = []string{"pending", "completed", "cancelled"}
	PaymentStatuses = []string{"pending", "in_progress", "completed"}
	RideStatuses    = []string{"pending", "accepted", "completed", "cancelled"}
)

func statusIn(allowed []string, s string) bool {
	for _, v := range allowed {
		if v == s {
			return true
		}
	}
	return false
}
