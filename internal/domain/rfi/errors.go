package rfi

import "errors"

var (
	// ErrNotFound indicates the RFI doesn't exist.
	ErrNotFound = errors.New("rfi not found")
	// ErrInvalidInput indicates invalid input for RFI operations.
	ErrInvalidInput = errors.New("invalid rfi input")
	// ErrInvalidStatus indicates a status outside the closed enumeration.
	ErrInvalidStatus = errors.New("invalid rfi status")
	// ErrInvalidPriority indicates a priority outside the closed enumeration.
	ErrInvalidPriority = errors.New("invalid rfi priority")
	// ErrInvalidStatusFilter indicates an unknown status filter value.
	ErrInvalidStatusFilter = errors.New("invalid status filter")
	// ErrInvalidPriorityFilter indicates an unknown priority filter value.
	ErrInvalidPriorityFilter = errors.New("invalid priority filter")
	// ErrInvalidTransition indicates an invalid workflow transition.
	ErrInvalidTransition = errors.New("invalid rfi status transition")
	// ErrInvalidNumber indicates a sequence number below 1.
	ErrInvalidNumber = errors.New("rfi number must be positive")
)
