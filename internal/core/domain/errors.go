package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrUserExists = errors.New("username already taken")
var ErrEmailTaken = errors.New("email already in use")
var ErrUserNotFound = errors.New("user not found")
var ErrRecordNotFound = errors.New("sleep record not found")
var ErrGoalNotFound = errors.New("goal not found")
var ErrReminderNotFound = errors.New("reminder not found")

// ValidationError reports a single violated input rule. Field names match the
// JSON payload keys so clients can point at the offending input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// NewValidationError builds a ValidationError for the given payload field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
