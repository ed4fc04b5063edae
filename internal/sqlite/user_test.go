package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sitehero/sitehero/internal/domain/user"
	"github.com/sitehero/sitehero/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Roles(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	role := &user.Role{
		ID:      "role1",
		Name:    "inspector",
		Builtin: false,
		Permissions: []user.Permission{
			user.PermRFIsRead,
			user.PermPunchlistRead,
		},
	}

	require.NoError(t, repo.CreateRole(ctx, "tenant1", role))

	loaded, err := repo.GetRole(ctx, "tenant1", "role1")
	require.NoError(t, err)
	require.Equal(t, "inspector", loaded.Name)
	require.ElementsMatch(t, role.Permissions, loaded.Permissions)

	byName, err := repo.GetRoleByName(ctx, "tenant1", "inspector")
	require.NoError(t, err)
	require.Equal(t, "role1", byName.ID)
}

func TestUserRepository_DuplicateRoleName(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.CreateRole(ctx, "tenant1", &user.Role{ID: "role1", Name: "inspector"}))

	err := repo.CreateRole(ctx, "tenant1", &user.Role{ID: "role2", Name: "inspector"})
	require.Equal(t, repository.ErrDuplicate, err)

	// Same name in another tenant is fine
	require.NoError(t, repo.CreateRole(ctx, "tenant2", &user.Role{ID: "role3", Name: "inspector"}))
}

func TestUserRepository_UpdateRolePermissions(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	role := &user.Role{
		ID:          "role1",
		Name:        "inspector",
		Permissions: []user.Permission{user.PermRFIsRead},
	}
	require.NoError(t, repo.CreateRole(ctx, "tenant1", role))

	role.Permissions = []user.Permission{user.PermRFIsRead, user.PermRFIsWrite}
	require.NoError(t, repo.UpdateRole(ctx, "tenant1", role))

	loaded, err := repo.GetRole(ctx, "tenant1", "role1")
	require.NoError(t, err)
	require.ElementsMatch(t, role.Permissions, loaded.Permissions)
}

func TestUserRepository_CreateGetUser(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.CreateRole(ctx, "tenant1", &user.Role{ID: "role1", Name: "inspector"}))

	u := &user.User{
		ID:          "u1",
		Email:       "sam@example.com",
		DisplayName: "Sam",
		RoleID:      "role1",
		Active:      true,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.CreateUser(ctx, "tenant1", u))

	loaded, err := repo.GetUser(ctx, "tenant1", "u1")
	require.NoError(t, err)
	require.Equal(t, "sam@example.com", loaded.Email)
	require.True(t, loaded.Active)

	byEmail, err := repo.GetUserByEmail(ctx, "tenant1", "sam@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.ID)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.CreateRole(ctx, "tenant1", &user.Role{ID: "role1", Name: "inspector"}))

	u := &user.User{ID: "u1", Email: "sam@example.com", RoleID: "role1", Active: true, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateUser(ctx, "tenant1", u))

	dup := &user.User{ID: "u2", Email: "sam@example.com", RoleID: "role1", Active: true, CreatedAt: time.Now()}
	require.Equal(t, repository.ErrDuplicate, repo.CreateUser(ctx, "tenant1", dup))
}

func TestUserRepository_UpdateUser(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.CreateRole(ctx, "tenant1", &user.Role{ID: "role1", Name: "inspector"}))

	u := &user.User{ID: "u1", Email: "sam@example.com", RoleID: "role1", Active: true, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateUser(ctx, "tenant1", u))

	u.Active = false
	require.NoError(t, repo.UpdateUser(ctx, "tenant1", u))

	loaded, err := repo.GetUser(ctx, "tenant1", "u1")
	require.NoError(t, err)
	require.False(t, loaded.Active)
}

func TestUserRepository_ListUsersAndRoles(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	repo := NewUserRepository(db)
	require.NoError(t, repo.CreateRole(ctx, "tenant1", &user.Role{ID: "role1", Name: "inspector"}))
	require.NoError(t, repo.CreateRole(ctx, "tenant1", &user.Role{ID: "role2", Name: "admin"}))

	u := &user.User{ID: "u1", Email: "sam@example.com", RoleID: "role1", Active: true, CreatedAt: time.Now()}
	require.NoError(t, repo.CreateUser(ctx, "tenant1", u))

	users, err := repo.ListUsers(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, users, 1)

	roles, err := repo.ListRoles(ctx, "tenant1")
	require.NoError(t, err)
	require.Len(t, roles, 2)
	require.Equal(t, "admin", roles[0].Name)
}
