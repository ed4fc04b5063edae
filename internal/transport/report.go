package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/report"
)

type createReportRequest struct {
	ProjectID string   `json:"project_id"`
	Name      string   `json:"name"`
	Source    string   `json:"source"`
	Columns   []string `json:"columns"`
	Status    string   `json:"status"`
	Priority  string   `json:"priority"`
}

func (s *Server) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	var req createReportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	def, err := s.svc.Reports.Create(r.Context(), id.TenantID, report.CreateRequest{
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Source:    req.Source,
		Columns:   req.Columns,
		Status:    req.Status,
		Priority:  req.Priority,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, def)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	defs, err := s.svc.Reports.List(r.Context(), id.TenantID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"reports": defs})
}

func (s *Server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	def, err := s.svc.Reports.Get(r.Context(), id.TenantID, chi.URLParam(r, "reportID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, def)
}

func (s *Server) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	if err := s.svc.Reports.Delete(r.Context(), id.TenantID, chi.URLParam(r, "reportID")); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleExportReport resolves a saved definition and streams it as CSV
// or XLSX.
func (s *Server) handleExportReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	def, err := s.svc.Reports.Get(r.Context(), id.TenantID, chi.URLParam(r, "reportID"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	table, err := s.svc.Reports.Build(r.Context(), id.TenantID, def, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", def.Name+".csv"))
		if err := report.RenderCSV(w, table); err != nil {
			s.logger.Error("csv export failed", "report", def.ID, "error", err)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", def.Name+".xlsx"))
		if err := report.RenderXLSX(w, table); err != nil {
			s.logger.Error("xlsx export failed", "report", def.ID, "error", err)
		}
	default:
		writeError(w, http.StatusBadRequest, "unsupported format")
	}
}
