package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sitehero/sitehero/internal/domain/user"
	"github.com/sitehero/sitehero/internal/repository"
)

// UserRepository implements user.Repository for SQLite
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(ctx context.Context, tenantID string, u *user.User) error {
	query := `
		INSERT INTO users (id, tenant_id, email, display_name, role_id, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID,
		tenantID,
		u.Email,
		u.DisplayName,
		u.RoleID,
		u.Active,
		u.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (r *UserRepository) GetUser(ctx context.Context, tenantID, id string) (*user.User, error) {
	return r.getUser(ctx, `id = ? AND tenant_id = ?`, id, tenantID)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, tenantID, email string) (*user.User, error) {
	return r.getUser(ctx, `email = ? AND tenant_id = ?`, email, tenantID)
}

func (r *UserRepository) getUser(ctx context.Context, where string, args ...any) (*user.User, error) {
	query := `
		SELECT id, tenant_id, email, display_name, role_id, active, created_at
		FROM users
		WHERE ` + where

	var u user.User
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.TenantID,
		&u.Email,
		&u.DisplayName,
		&u.RoleID,
		&u.Active,
		&u.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// UpdateUser updates a user's mutable fields
func (r *UserRepository) UpdateUser(ctx context.Context, tenantID string, u *user.User) error {
	query := `
		UPDATE users
		SET display_name = ?, role_id = ?, active = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query, u.DisplayName, u.RoleID, u.Active, u.ID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ListUsers returns all users for a tenant
func (r *UserRepository) ListUsers(ctx context.Context, tenantID string) ([]user.User, error) {
	query := `
		SELECT id, tenant_id, email, display_name, role_id, active, created_at
		FROM users
		WHERE tenant_id = ?
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		err := rows.Scan(&u.ID, &u.TenantID, &u.Email, &u.DisplayName, &u.RoleID, &u.Active, &u.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// CreateRole creates a role with its permission set
func (r *UserRepository) CreateRole(ctx context.Context, tenantID string, role *user.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO roles (id, tenant_id, name, builtin) VALUES (?, ?, ?, ?)`,
		role.ID, tenantID, role.Name, role.Builtin,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create role: %w", err)
	}

	for _, p := range role.Permissions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO role_permissions (role_id, permission) VALUES (?, ?)`,
			role.ID, p,
		)
		if err != nil {
			return fmt.Errorf("failed to create role permission: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRole retrieves a role with its permissions by ID
func (r *UserRepository) GetRole(ctx context.Context, tenantID, id string) (*user.Role, error) {
	return r.getRole(ctx, `id = ? AND tenant_id = ?`, id, tenantID)
}

// GetRoleByName retrieves a role with its permissions by name
func (r *UserRepository) GetRoleByName(ctx context.Context, tenantID, name string) (*user.Role, error) {
	return r.getRole(ctx, `name = ? AND tenant_id = ?`, name, tenantID)
}

func (r *UserRepository) getRole(ctx context.Context, where string, args ...any) (*user.Role, error) {
	query := `SELECT id, tenant_id, name, builtin FROM roles WHERE ` + where

	var role user.Role
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&role.ID,
		&role.TenantID,
		&role.Name,
		&role.Builtin,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	perms, err := r.rolePermissions(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	role.Permissions = perms

	return &role, nil
}

// UpdateRole replaces a role's permission set
func (r *UserRepository) UpdateRole(ctx context.Context, tenantID string, role *user.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`UPDATE roles SET name = ? WHERE id = ? AND tenant_id = ?`,
		role.Name, role.ID, tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM role_permissions WHERE role_id = ?`, role.ID); err != nil {
		return fmt.Errorf("failed to clear role permissions: %w", err)
	}

	for _, p := range role.Permissions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO role_permissions (role_id, permission) VALUES (?, ?)`,
			role.ID, p,
		)
		if err != nil {
			return fmt.Errorf("failed to insert role permission: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListRoles returns all roles for a tenant with their permissions
func (r *UserRepository) ListRoles(ctx context.Context, tenantID string) ([]user.Role, error) {
	query := `
		SELECT id, tenant_id, name, builtin
		FROM roles
		WHERE tenant_id = ?
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []user.Role
	for rows.Next() {
		var role user.Role
		if err := rows.Scan(&role.ID, &role.TenantID, &role.Name, &role.Builtin); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	for i := range roles {
		perms, err := r.rolePermissions(ctx, roles[i].ID)
		if err != nil {
			return nil, err
		}
		roles[i].Permissions = perms
	}

	return roles, nil
}

func (r *UserRepository) rolePermissions(ctx context.Context, roleID string) ([]user.Permission, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT permission FROM role_permissions WHERE role_id = ? ORDER BY permission ASC`,
		roleID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get role permissions: %w", err)
	}
	defer rows.Close()

	var perms []user.Permission
	for rows.Next() {
		var p user.Permission
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		perms = append(perms, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permission rows: %w", err)
	}

	return perms, nil
}
