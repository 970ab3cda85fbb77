package auth

import "errors"

// Terminal error conditions surfaced to the delivery layer. None of these
// trigger retries inside the service.
var (
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid password")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrOTPNotFound          = errors.New("no code issued for this email")
)
