package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitehero/sitehero/internal/repository"
)

// Service handles user and role administration.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// EnsureBuiltinRoles seeds the built-in roles for a tenant if missing.
func (s *Service) EnsureBuiltinRoles(ctx context.Context, tenantID string) error {
	for _, name := range []string{RoleAdmin, RoleProjectManager, RoleFieldWorker, RoleViewer} {
		_, err := s.repo.GetRoleByName(ctx, tenantID, name)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("checking role %s: %w", name, err)
		}
		role := &Role{
			ID:          uuid.NewString(),
			TenantID:    tenantID,
			Name:        name,
			Builtin:     true,
			Permissions: BuiltinRolePermissions[name],
		}
		if err := s.repo.CreateRole(ctx, tenantID, role); err != nil {
			return fmt.Errorf("seeding role %s: %w", name, err)
		}
	}
	return nil
}

// CreateUserRequest defines user creation inputs.
type CreateUserRequest struct {
	Email       string
	DisplayName string
	RoleID      string
}

// CreateUser registers a new user under an existing role.
func (s *Service) CreateUser(ctx context.Context, tenantID string, req CreateUserRequest) (*User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.RoleID) == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.repo.GetRole(ctx, tenantID, req.RoleID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("checking role: %w", err)
	}

	u := &User{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Email:       email,
		DisplayName: req.DisplayName,
		RoleID:      req.RoleID,
		Active:      true,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateUser(ctx, tenantID, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// GetUser returns a user by ID.
func (s *Service) GetUser(ctx context.Context, tenantID, id string) (*User, error) {
	u, err := s.repo.GetUser(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// GetUserByEmail returns a user by normalized email address.
func (s *Service) GetUserByEmail(ctx context.Context, tenantID, email string) (*User, error) {
	u, err := s.repo.GetUserByEmail(ctx, tenantID, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return u, nil
}

// ListUsers returns all users of a tenant.
func (s *Service) ListUsers(ctx context.Context, tenantID string) ([]User, error) {
	return s.repo.ListUsers(ctx, tenantID)
}

// Deactivate disables a user account.
func (s *Service) Deactivate(ctx context.Context, tenantID, id string) (*User, error) {
	u, err := s.GetUser(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	u.Active = false
	if err := s.repo.UpdateUser(ctx, tenantID, u); err != nil {
		return nil, fmt.Errorf("deactivating user: %w", err)
	}
	return u, nil
}

// CreateRoleRequest defines custom role creation inputs.
type CreateRoleRequest struct {
	Name        string
	Permissions []string
}

// CreateRole creates a custom role with a validated permission subset.
func (s *Service) CreateRole(ctx context.Context, tenantID string, req CreateRoleRequest) (*Role, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	perms, err := parsePermissions(req.Permissions)
	if err != nil {
		return nil, err
	}

	role := &Role{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Name:        req.Name,
		Builtin:     false,
		Permissions: perms,
	}

	if err := s.repo.CreateRole(ctx, tenantID, role); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("creating role: %w", err)
	}
	return role, nil
}

// UpdateRolePermissions replaces a custom role's permission set.
// Built-in roles are immutable.
func (s *Service) UpdateRolePermissions(ctx context.Context, tenantID, roleID string, permissions []string) (*Role, error) {
	role, err := s.repo.GetRole(ctx, tenantID, roleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("getting role: %w", err)
	}
	if role.Builtin {
		return nil, ErrBuiltinRole
	}

	perms, err := parsePermissions(permissions)
	if err != nil {
		return nil, err
	}

	role.Permissions = perms
	if err := s.repo.UpdateRole(ctx, tenantID, role); err != nil {
		return nil, fmt.Errorf("updating role: %w", err)
	}
	return role, nil
}

// ListRoles returns all roles of a tenant.
func (s *Service) ListRoles(ctx context.Context, tenantID string) ([]Role, error) {
	return s.repo.ListRoles(ctx, tenantID)
}

// HasPermission reports whether a user's role grants a permission.
// Inactive users have no permissions.
func (s *Service) HasPermission(ctx context.Context, tenantID, userID string, perm Permission) (bool, error) {
	u, err := s.GetUser(ctx, tenantID, userID)
	if err != nil {
		return false, err
	}
	if !u.Active {
		return false, nil
	}

	role, err := s.repo.GetRole(ctx, tenantID, u.RoleID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrRoleNotFound
		}
		return false, fmt.Errorf("getting role: %w", err)
	}

	for _, p := range role.Permissions {
		if p == perm {
			return true, nil
		}
	}
	return false, nil
}

func parsePermissions(raw []string) ([]Permission, error) {
	perms := make([]Permission, 0, len(raw))
	seen := make(map[Permission]bool, len(raw))
	for _, r := range raw {
		p, err := ParsePermission(r)
		if err != nil {
			return nil, err
		}
		if !seen[p] {
			seen[p] = true
			perms = append(perms, p)
		}
	}
	return perms, nil
}
