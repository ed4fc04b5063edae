package user

import "errors"

var (
	// ErrUserNotFound indicates the user doesn't exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrRoleNotFound indicates the role doesn't exist.
	ErrRoleNotFound = errors.New("role not found")
	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidInput indicates invalid user or role input.
	ErrInvalidInput = errors.New("invalid user input")
	// ErrInvalidPermission indicates a permission outside the closed set.
	ErrInvalidPermission = errors.New("invalid permission")
	// ErrBuiltinRole indicates an attempt to modify a built-in role.
	ErrBuiltinRole = errors.New("built-in role cannot be modified")
)
