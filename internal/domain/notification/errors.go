package notification

import "errors"

var (
	// ErrNotFound indicates the notification doesn't exist.
	ErrNotFound = errors.New("notification not found")
	// ErrInvalidInput indicates invalid notification input.
	ErrInvalidInput = errors.New("invalid notification input")
)
