package model

import "errors"

var (
	// ErrNotFound covers missing entities and entities owned by someone else.
	ErrNotFound = errors.New("not found")

	ErrEmailTaken      = errors.New("email already registered")
	ErrPhoneTaken      = errors.New("phone already registered")
	ErrAlreadyVerified = errors.New("user already verified")

	// ErrInvalidOTP covers both a wrong and an expired code.
	ErrInvalidOTP = errors.New("invalid or expired otp")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("user not verified")

	// ErrNotificationFailure signals that the OTP email could not be sent and
	// the registration attempt was rolled back.
	ErrNotificationFailure = errors.New("failed to send notification")

	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError reports a rejected request input. Its message is safe to
// return to clients verbatim.
type ValidationError struct {
	msg string
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
