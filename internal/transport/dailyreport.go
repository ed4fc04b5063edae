package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/domain/dailyreport"
)

type createDailyReportRequest struct {
	ReportDate      time.Time `json:"report_date"`
	Weather         string    `json:"weather"`
	TemperatureC    *float64  `json:"temperature_c"`
	WorkforceCount  int       `json:"workforce_count"`
	WorkPerformed   string    `json:"work_performed"`
	Delays          string    `json:"delays"`
	SafetyIncidents string    `json:"safety_incidents"`
	Notes           string    `json:"notes"`
}

type updateDailyReportRequest struct {
	Weather         *string  `json:"weather"`
	TemperatureC    *float64 `json:"temperature_c"`
	WorkforceCount  *int     `json:"workforce_count"`
	WorkPerformed   *string  `json:"work_performed"`
	Delays          *string  `json:"delays"`
	SafetyIncidents *string  `json:"safety_incidents"`
	Notes           *string  `json:"notes"`
}

func (s *Server) handleCreateDailyReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req createDailyReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rep, err := s.svc.DailyReports.Create(r.Context(), id.TenantID, dailyreport.CreateRequest{
		ProjectID:       chi.URLParam(r, "projectID"),
		ReportDate:      req.ReportDate,
		Weather:         req.Weather,
		TemperatureC:    req.TemperatureC,
		WorkforceCount:  req.WorkforceCount,
		WorkPerformed:   req.WorkPerformed,
		Delays:          req.Delays,
		SafetyIncidents: req.SafetyIncidents,
		Notes:           req.Notes,
		CreatedBy:       id.UserID,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, rep)
}

// handleListDailyReports lists a project's reports in a date range.
// Without from/to it returns the trailing 30 days.
func (s *Server) handleListDailyReports(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if raw := q.Get("from"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from date")
			return
		}
		from = parsed
	}
	if raw := q.Get("to"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to date")
			return
		}
		to = parsed
	}

	reports, err := s.svc.DailyReports.ListByRange(r.Context(), id.TenantID, chi.URLParam(r, "projectID"), from, to)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reports": reports})
}

func (s *Server) handleGetDailyReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	rep, err := s.svc.DailyReports.Get(r.Context(), id.TenantID, chi.URLParam(r, "reportID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleUpdateDailyReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req updateDailyReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rep, err := s.svc.DailyReports.Update(r.Context(), id.TenantID, dailyreport.UpdateRequest{
		ID:              chi.URLParam(r, "reportID"),
		Weather:         req.Weather,
		TemperatureC:    req.TemperatureC,
		WorkforceCount:  req.WorkforceCount,
		WorkPerformed:   req.WorkPerformed,
		Delays:          req.Delays,
		SafetyIncidents: req.SafetyIncidents,
		Notes:           req.Notes,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleDeleteDailyReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	if err := s.svc.DailyReports.Delete(r.Context(), id.TenantID, chi.URLParam(r, "reportID")); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
