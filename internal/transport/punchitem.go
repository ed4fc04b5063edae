package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
)

type createPunchItemRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Trade       string     `json:"trade"`
	Priority    string     `json:"priority"`
	AssigneeID  string     `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
}

type updatePunchItemRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	Trade       *string    `json:"trade"`
	Priority    *string    `json:"priority"`
	AssigneeID  *string    `json:"assignee_id"`
	DueDate     *time.Time `json:"due_date"`
	ClearDue    bool       `json:"clear_due"`
}

func (s *Server) handleCreatePunchItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req createPunchItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := s.svc.PunchItems.Create(r.Context(), id.TenantID, punchlist.CreateRequest{
		ProjectID:   chi.URLParam(r, "projectID"),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Trade:       req.Trade,
		Priority:    rfi.Priority(req.Priority),
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handlePunchListView(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	items, stats, err := s.svc.PunchItems.View(r.Context(), id.TenantID, chi.URLParam(r, "projectID"), time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items, "stats": stats})
}

func (s *Server) handleGetPunchItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	item, err := s.svc.PunchItems.Get(r.Context(), id.TenantID, chi.URLParam(r, "itemID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdatePunchItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req updatePunchItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	update := punchlist.UpdateRequest{
		ID:          chi.URLParam(r, "itemID"),
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Trade:       req.Trade,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		ClearDue:    req.ClearDue,
	}
	if req.Priority != nil {
		p, err := rfi.ParsePriority(*req.Priority)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		update.Priority = &p
	}

	item, err := s.svc.PunchItems.Update(r.Context(), id.TenantID, update)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleTransitionPunchItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req transitionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	status, err := punchlist.ParseStatus(req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	item, err := s.svc.PunchItems.Transition(r.Context(), id.TenantID, chi.URLParam(r, "itemID"), status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}
