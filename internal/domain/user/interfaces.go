package user

import "context"

// Repository provides persistence for users and roles.
type Repository interface {
	CreateUser(ctx context.Context, tenantID string, u *User) error
	GetUser(ctx context.Context, tenantID, id string) (*User, error)
	GetUserByEmail(ctx context.Context, tenantID, email string) (*User, error)
	UpdateUser(ctx context.Context, tenantID string, u *User) error
	ListUsers(ctx context.Context, tenantID string) ([]User, error)
	CreateRole(ctx context.Context, tenantID string, r *Role) error
	GetRole(ctx context.Context, tenantID, id string) (*Role, error)
	GetRoleByName(ctx context.Context, tenantID, name string) (*Role, error)
	UpdateRole(ctx context.Context, tenantID string, r *Role) error
	ListRoles(ctx context.Context, tenantID string) ([]Role, error)
}
