// Package common defines shared constants and sentinel errors used across
// client and server layers of feelflow. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Request validation errors.
	ErrorMissingField  = errors.New("missing required field")
	ErrorInvalidFormat = errors.New("invalid email format")
	ErrorWeakPassword  = errors.New("weak password")

	// Account errors.
	ErrorConflict           = errors.New("email already registered")
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorUserNotFound       = errors.New("user not found")

	// Token errors.
	ErrorInvalidToken = errors.New("invalid token")
	ErrorTokenExpired = errors.New("token expired")
)

// WeakPasswordError reports the first password strength rule that failed.
// It matches ErrorWeakPassword with errors.Is.
type WeakPasswordError struct {
	Reason string
}

func (e *WeakPasswordError) Error() string {
	return e.Reason
}

func (e *WeakPasswordError) Unwrap() error {
	return ErrorWeakPassword
}
