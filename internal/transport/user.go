package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/domain/user"
)

type createUserRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	RoleID      string `json:"role_id"`
}

type createRoleRequest struct {
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

type updateRolePermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := s.svc.Users.CreateUser(r.Context(), id.TenantID, user.CreateUserRequest{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		RoleID:      req.RoleID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, u)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	users, err := s.svc.Users.ListUsers(r.Context(), id.TenantID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	u, err := s.svc.Users.GetUser(r.Context(), id.TenantID, chi.URLParam(r, "userID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleDeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	u, err := s.svc.Users.Deactivate(r.Context(), id.TenantID, chi.URLParam(r, "userID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req createRoleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := s.svc.Users.CreateRole(r.Context(), id.TenantID, user.CreateRoleRequest{
		Name:        req.Name,
		Permissions: req.Permissions,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, role)
}

func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	roles, err := s.svc.Users.ListRoles(r.Context(), id.TenantID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"roles": roles})
}

func (s *Server) handleUpdateRolePermissions(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req updateRolePermissionsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role, err := s.svc.Users.UpdateRolePermissions(r.Context(), id.TenantID, chi.URLParam(r, "roleID"), req.Permissions)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, role)
}
