package project

import "errors"

var (
	// ErrProjectNotFound indicates the project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrWorkflowNotFound indicates the workflow type isn't configured.
	ErrWorkflowNotFound = errors.New("workflow type not found")
	// ErrInvalidInput indicates invalid project input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidStatus indicates a status outside the closed enumeration.
	ErrInvalidStatus = errors.New("invalid project status")
)
