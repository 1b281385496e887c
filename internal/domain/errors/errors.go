package errors

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBookNotFound       = errors.New("book not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInterval    = errors.New("invalid booking interval")
	ErrBookingOverlap     = errors.New("booking overlaps an existing booking")
)
