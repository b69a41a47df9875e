package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenExpired       = errors.New("token expired")
	ErrResetNotFound      = errors.New("reset token not found")
	ErrResetExpired       = errors.New("reset token expired")
)

// ValidationError carries the first failing field-level message, surfaced
// to the client as a 422.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
