package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/domain/rfi"
)

type createRFIRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	ReferenceNumber string     `json:"reference_number"`
	Priority        string     `json:"priority"`
	DueDate         *time.Time `json:"due_date"`
}

type updateRFIRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	ReferenceNumber *string    `json:"reference_number"`
	Priority        *string    `json:"priority"`
	DueDate         *time.Time `json:"due_date"`
	ClearDue        bool       `json:"clear_due"`
}

type transitionRequest struct {
	Status string `json:"status"`
}

func (s *Server) handleCreateRFI(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req createRFIRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := s.svc.RFIs.Create(r.Context(), id.TenantID, rfi.CreateRequest{
		ProjectID:       chi.URLParam(r, "projectID"),
		Title:           req.Title,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Priority:        rfi.Priority(req.Priority),
		DueDate:         req.DueDate,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// handleRFIView serves the filtered RFI list with statistics. The
// filters come from query parameters; statistics always cover the full
// project regardless of filters.
func (s *Server) handleRFIView(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	status, err := rfi.ParseStatusFilter(q.Get("status"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	priority, err := rfi.ParsePriorityFilter(q.Get("priority"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	criteria := rfi.FilterCriteria{
		SearchTerm: q.Get("search"),
		Status:     status,
		Priority:   priority,
	}

	view, err := s.svc.RFIs.View(r.Context(), id.TenantID, chi.URLParam(r, "projectID"), criteria, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleSearchRFIs(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	opts := rfi.SearchOptions{}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = n
	}
	if offset := q.Get("offset"); offset != "" {
		n, err := strconv.Atoi(offset)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		opts.Offset = n
	}

	results, err := s.svc.RFIs.Search(r.Context(), id.TenantID, chi.URLParam(r, "projectID"), query, opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) handleGetRFI(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	item, err := s.svc.RFIs.Get(r.Context(), id.TenantID, chi.URLParam(r, "rfiID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleUpdateRFI(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req updateRFIRequest
	if !decodeBody(w, r, &req) {
		return
	}

	update := rfi.UpdateRequest{
		ID:              chi.URLParam(r, "rfiID"),
		Title:           req.Title,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		DueDate:         req.DueDate,
		ClearDue:        req.ClearDue,
	}
	if req.Priority != nil {
		p, err := rfi.ParsePriority(*req.Priority)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		update.Priority = &p
	}

	item, err := s.svc.RFIs.Update(r.Context(), id.TenantID, update)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleTransitionRFI(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req transitionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	status, err := rfi.ParseStatus(req.Status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	item, err := s.svc.RFIs.Transition(r.Context(), id.TenantID, chi.URLParam(r, "rfiID"), status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteRFI(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	if err := s.svc.RFIs.Delete(r.Context(), id.TenantID, chi.URLParam(r, "rfiID")); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
