package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/domain/notification"
)

// handleListNotifications serves the caller's notification feed.
// User-scoped tokens see broadcasts plus their own notifications.
func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	opts := notification.ListOptions{
		ProjectID:  q.Get("project_id"),
		UserID:     id.UserID,
		UnreadOnly: q.Get("unread") == "true",
	}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		opts.Limit = n
	}

	list, err := s.svc.Notifications.List(r.Context(), id.TenantID, opts)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"notifications": list})
}

func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, ok := s.identity(w, r)
	if !ok {
		return
	}

	nid, err := strconv.ParseInt(chi.URLParam(r, "notificationID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := s.svc.Notifications.MarkRead(r.Context(), id.TenantID, nid); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
