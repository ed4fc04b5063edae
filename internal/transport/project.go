package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/domain/project"
)

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
}

type setProjectStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req createProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	proj, err := s.svc.Projects.Create(r.Context(), id.TenantID, project.CreateRequest{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	summaries, err := s.svc.Projects.List(r.Context(), id.TenantID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"projects": summaries})
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	proj, err := s.svc.Projects.Get(r.Context(), id.TenantID, chi.URLParam(r, "projectID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleSetProjectStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req setProjectStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	status, err := project.ParseStatus(req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	proj, err := s.svc.Projects.SetStatus(r.Context(), id.TenantID, chi.URLParam(r, "projectID"), status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, proj)
}
