package domain

import "errors"

// Sentinel domain errors. Repositories and services return these; the HTTP
// error handler maps each to its status code.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrConnectivity       = errors.New("database unavailable")
)
