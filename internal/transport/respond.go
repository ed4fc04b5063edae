package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sitehero/sitehero/internal/domain/dailyreport"
	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/domain/project"
	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/domain/user"
	"github.com/sitehero/sitehero/internal/report"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

var notFoundErrs = []error{
	rfi.ErrNotFound,
	project.ErrProjectNotFound,
	project.ErrWorkflowNotFound,
	dailyreport.ErrNotFound,
	punchlist.ErrNotFound,
	user.ErrUserNotFound,
	user.ErrRoleNotFound,
	notification.ErrNotFound,
	report.ErrNotFound,
}

var conflictErrs = []error{
	rfi.ErrInvalidTransition,
	punchlist.ErrInvalidTransition,
	dailyreport.ErrDuplicateDate,
	user.ErrDuplicateEmail,
	user.ErrBuiltinRole,
}

var validationErrs = []error{
	rfi.ErrInvalidInput,
	rfi.ErrInvalidStatus,
	rfi.ErrInvalidPriority,
	rfi.ErrInvalidStatusFilter,
	rfi.ErrInvalidPriorityFilter,
	rfi.ErrInvalidNumber,
	project.ErrInvalidInput,
	project.ErrInvalidStatus,
	dailyreport.ErrInvalidInput,
	punchlist.ErrInvalidInput,
	punchlist.ErrInvalidStatus,
	user.ErrInvalidInput,
	user.ErrInvalidPermission,
	notification.ErrInvalidInput,
	report.ErrInvalidInput,
	report.ErrInvalidSource,
	report.ErrInvalidColumn,
}

// writeDomainError translates service errors into HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
	}
	for _, target := range conflictErrs {
		if errors.Is(err, target) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
	}
	for _, target := range validationErrs {
		if errors.Is(err, target) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
	}
	writeError(w, http.StatusInternalServerError, "internal error")
}

// decodeBody parses a JSON request body into dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
