package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitehero/sitehero/internal/domain/user"
	"github.com/sitehero/sitehero/internal/repository"
	"github.com/sitehero/sitehero/internal/repository/mocks"
)

func TestUserService_EnsureBuiltinRoles(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	repo := &mocks.UserRepository{}
	// admin already exists, the other three get seeded
	repo.On("GetRoleByName", ctx, tenantID, user.RoleAdmin).Return(&user.Role{ID: "r1", Name: user.RoleAdmin, Builtin: true}, nil)
	repo.On("GetRoleByName", ctx, tenantID, user.RoleProjectManager).Return(nil, repository.ErrNotFound)
	repo.On("GetRoleByName", ctx, tenantID, user.RoleFieldWorker).Return(nil, repository.ErrNotFound)
	repo.On("GetRoleByName", ctx, tenantID, user.RoleViewer).Return(nil, repository.ErrNotFound)
	repo.On("CreateRole", ctx, tenantID, mock.Anything).Return(nil)

	svc := user.NewService(repo, nil)
	require.NoError(t, svc.EnsureBuiltinRoles(ctx, tenantID))
	repo.AssertNumberOfCalls(t, "CreateRole", 3)
}

func TestUserService_CreateUser(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	repo := &mocks.UserRepository{}
	repo.On("GetRole", ctx, tenantID, "role1").Return(&user.Role{ID: "role1"}, nil)
	repo.On("CreateUser", ctx, tenantID, mock.Anything).Return(nil)

	svc := user.NewService(repo, nil)
	u, err := svc.CreateUser(ctx, tenantID, user.CreateUserRequest{
		Email:       "  Foreman@Example.COM ",
		DisplayName: "Site Foreman",
		RoleID:      "role1",
	})
	require.NoError(t, err)
	require.Equal(t, "foreman@example.com", u.Email)
	require.True(t, u.Active)
}

func TestUserService_CreateUser_Invalid(t *testing.T) {
	ctx := context.Background()
	svc := user.NewService(&mocks.UserRepository{}, nil)

	_, err := svc.CreateUser(ctx, "tenant1", user.CreateUserRequest{Email: "not-an-email", RoleID: "r1"})
	require.ErrorIs(t, err, user.ErrInvalidInput)

	_, err = svc.CreateUser(ctx, "tenant1", user.CreateUserRequest{Email: "a@b.com"})
	require.ErrorIs(t, err, user.ErrInvalidInput)
}

func TestUserService_CreateUser_RoleNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("GetRole", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := user.NewService(repo, nil)
	_, err := svc.CreateUser(ctx, "tenant1", user.CreateUserRequest{Email: "a@b.com", RoleID: "missing"})
	require.ErrorIs(t, err, user.ErrRoleNotFound)
}

func TestUserService_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("GetRole", ctx, "tenant1", "role1").Return(&user.Role{ID: "role1"}, nil)
	repo.On("CreateUser", ctx, "tenant1", mock.Anything).Return(repository.ErrDuplicate)

	svc := user.NewService(repo, nil)
	_, err := svc.CreateUser(ctx, "tenant1", user.CreateUserRequest{Email: "a@b.com", RoleID: "role1"})
	require.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestUserService_GetUserByEmail(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("GetUserByEmail", ctx, "tenant1", "foreman@example.com").Return(&user.User{ID: "u1"}, nil)

	svc := user.NewService(repo, nil)
	u, err := svc.GetUserByEmail(ctx, "tenant1", " Foreman@Example.com ")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
}

func TestUserService_CreateRole_InvalidPermission(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, nil)
	_, err := svc.CreateRole(context.Background(), "tenant1", user.CreateRoleRequest{
		Name:        "inspectors",
		Permissions: []string{"rfis:read", "everything:all"},
	})
	require.ErrorIs(t, err, user.ErrInvalidPermission)
}

func TestUserService_UpdateRolePermissions_BuiltinImmutable(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("GetRole", ctx, "tenant1", "r1").Return(&user.Role{ID: "r1", Name: user.RoleAdmin, Builtin: true}, nil)

	svc := user.NewService(repo, nil)
	_, err := svc.UpdateRolePermissions(ctx, "tenant1", "r1", []string{"rfis:read"})
	require.ErrorIs(t, err, user.ErrBuiltinRole)
}

func TestUserService_HasPermission(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	repo := &mocks.UserRepository{}
	repo.On("GetUser", ctx, tenantID, "u1").Return(&user.User{ID: "u1", RoleID: "r1", Active: true}, nil)
	repo.On("GetRole", ctx, tenantID, "r1").Return(&user.Role{
		ID:          "r1",
		Permissions: []user.Permission{user.PermRFIsRead, user.PermRFIsWrite},
	}, nil)

	svc := user.NewService(repo, nil)

	ok, err := svc.HasPermission(ctx, tenantID, "u1", user.PermRFIsWrite)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.HasPermission(ctx, tenantID, "u1", user.PermUsersAdmin)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUserService_HasPermission_InactiveUser(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.UserRepository{}
	repo.On("GetUser", ctx, "tenant1", "u1").Return(&user.User{ID: "u1", RoleID: "r1", Active: false}, nil)

	svc := user.NewService(repo, nil)
	ok, err := svc.HasPermission(ctx, "tenant1", "u1", user.PermRFIsRead)
	require.NoError(t, err)
	require.False(t, ok)
}
