package punchlist

import "errors"

var (
	// ErrNotFound indicates the punch item doesn't exist.
	ErrNotFound = errors.New("punch item not found")
	// ErrInvalidInput indicates invalid punch item input.
	ErrInvalidInput = errors.New("invalid punch item input")
	// ErrInvalidStatus indicates a status outside the closed enumeration.
	ErrInvalidStatus = errors.New("invalid punch item status")
	// ErrInvalidTransition indicates an invalid workflow transition.
	ErrInvalidTransition = errors.New("invalid punch item status transition")
)
