package user

import (
	"fmt"
	"time"
)

// Permission is a closed "resource:action" grant
type Permission string

const (
	PermProjectsRead   Permission = "projects:read"
	PermProjectsWrite  Permission = "projects:write"
	PermRFIsRead       Permission = "rfis:read"
	PermRFIsWrite      Permission = "rfis:write"
	PermReportsRead    Permission = "reports:read"
	PermReportsWrite   Permission = "reports:write"
	PermPunchlistRead  Permission = "punchlist:read"
	PermPunchlistWrite Permission = "punchlist:write"
	PermUsersAdmin     Permission = "users:admin"
)

// AllPermissions lists every grant in the closed set.
var AllPermissions = []Permission{
	PermProjectsRead, PermProjectsWrite,
	PermRFIsRead, PermRFIsWrite,
	PermReportsRead, PermReportsWrite,
	PermPunchlistRead, PermPunchlistWrite,
	PermUsersAdmin,
}

// ParsePermission validates a raw permission string.
func ParsePermission(s string) (Permission, error) {
	for _, p := range AllPermissions {
		if Permission(s) == p {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPermission, s)
}

// Role groups permissions. Built-in roles carry fixed permission sets
// and cannot be modified.
type Role struct {
	ID          string       `json:"id"`
	TenantID    string       `json:"tenant_id"`
	Name        string       `json:"name"`
	Builtin     bool         `json:"builtin"`
	Permissions []Permission `json:"permissions"`
}

// Built-in role names.
const (
	RoleAdmin          = "admin"
	RoleProjectManager = "project_manager"
	RoleFieldWorker    = "field_worker"
	RoleViewer         = "viewer"
)

// BuiltinRolePermissions is the seeded permission matrix for the
// built-in roles.
var BuiltinRolePermissions = map[string][]Permission{
	RoleAdmin: AllPermissions,
	RoleProjectManager: {
		PermProjectsRead, PermProjectsWrite,
		PermRFIsRead, PermRFIsWrite,
		PermReportsRead, PermReportsWrite,
		PermPunchlistRead, PermPunchlistWrite,
	},
	RoleFieldWorker: {
		PermProjectsRead,
		PermRFIsRead,
		PermReportsRead, PermReportsWrite,
		PermPunchlistRead, PermPunchlistWrite,
	},
	RoleViewer: {
		PermProjectsRead, PermRFIsRead, PermReportsRead, PermPunchlistRead,
	},
}

// User represents an account within a tenant
type User struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	RoleID      string    `json:"role_id"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}
