package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sitehero/sitehero/internal/domain/dailyreport"
	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/domain/project"
	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/domain/user"
	"github.com/sitehero/sitehero/internal/report"
)

// Services bundles the domain services the HTTP layer exposes.
type Services struct {
	Projects      *project.Service
	RFIs          *rfi.Service
	DailyReports  *dailyreport.Service
	PunchItems    *punchlist.Service
	Users         *user.Service
	Notifications *notification.Service
	Reports       *report.Builder
}

// Server wires HTTP handlers around the domain services.
type Server struct {
	svc    Services
	logger *slog.Logger
}

// NewServer creates an HTTP router with middleware.
func NewServer(svc Services, authMiddleware func(http.Handler) http.Handler, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", srv.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Route("/projects", func(r chi.Router) {
			r.With(srv.require(user.PermProjectsWrite)).Post("/", srv.handleCreateProject)
			r.With(srv.require(user.PermProjectsRead)).Get("/", srv.handleListProjects)
			r.Route("/{projectID}", func(r chi.Router) {
				r.With(srv.require(user.PermProjectsRead)).Get("/", srv.handleGetProject)
				r.With(srv.require(user.PermProjectsWrite)).Put("/status", srv.handleSetProjectStatus)

				r.Route("/rfis", func(r chi.Router) {
					r.With(srv.require(user.PermRFIsWrite)).Post("/", srv.handleCreateRFI)
					r.With(srv.require(user.PermRFIsRead)).Get("/", srv.handleRFIView)
					r.With(srv.require(user.PermRFIsRead)).Get("/search", srv.handleSearchRFIs)
				})

				r.Route("/daily-reports", func(r chi.Router) {
					r.With(srv.require(user.PermReportsWrite)).Post("/", srv.handleCreateDailyReport)
					r.With(srv.require(user.PermReportsRead)).Get("/", srv.handleListDailyReports)
				})

				r.Route("/punch-items", func(r chi.Router) {
					r.With(srv.require(user.PermPunchlistWrite)).Post("/", srv.handleCreatePunchItem)
					r.With(srv.require(user.PermPunchlistRead)).Get("/", srv.handlePunchListView)
				})
			})
		})

		r.Route("/rfis/{rfiID}", func(r chi.Router) {
			r.With(srv.require(user.PermRFIsRead)).Get("/", srv.handleGetRFI)
			r.With(srv.require(user.PermRFIsWrite)).Patch("/", srv.handleUpdateRFI)
			r.With(srv.require(user.PermRFIsWrite)).Post("/transition", srv.handleTransitionRFI)
			r.With(srv.require(user.PermRFIsWrite)).Delete("/", srv.handleDeleteRFI)
		})

		r.Route("/daily-reports/{reportID}", func(r chi.Router) {
			r.With(srv.require(user.PermReportsRead)).Get("/", srv.handleGetDailyReport)
			r.With(srv.require(user.PermReportsWrite)).Patch("/", srv.handleUpdateDailyReport)
			r.With(srv.require(user.PermReportsWrite)).Delete("/", srv.handleDeleteDailyReport)
		})

		r.Route("/punch-items/{itemID}", func(r chi.Router) {
			r.With(srv.require(user.PermPunchlistRead)).Get("/", srv.handleGetPunchItem)
			r.With(srv.require(user.PermPunchlistWrite)).Patch("/", srv.handleUpdatePunchItem)
			r.With(srv.require(user.PermPunchlistWrite)).Post("/transition", srv.handleTransitionPunchItem)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(srv.require(user.PermUsersAdmin)).Post("/", srv.handleCreateUser)
			r.With(srv.require(user.PermUsersAdmin)).Get("/", srv.handleListUsers)
			r.With(srv.require(user.PermUsersAdmin)).Get("/{userID}", srv.handleGetUser)
			r.With(srv.require(user.PermUsersAdmin)).Post("/{userID}/deactivate", srv.handleDeactivateUser)
		})

		r.Route("/roles", func(r chi.Router) {
			r.With(srv.require(user.PermUsersAdmin)).Post("/", srv.handleCreateRole)
			r.With(srv.require(user.PermUsersAdmin)).Get("/", srv.handleListRoles)
			r.With(srv.require(user.PermUsersAdmin)).Put("/{roleID}/permissions", srv.handleUpdateRolePermissions)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", srv.handleListNotifications)
			r.Post("/{notificationID}/read", srv.handleMarkNotificationRead)
		})

		r.Route("/reports", func(r chi.Router) {
			r.With(srv.require(user.PermReportsWrite)).Post("/", srv.handleCreateReport)
			r.With(srv.require(user.PermReportsRead)).Get("/", srv.handleListReports)
			r.With(srv.require(user.PermReportsRead)).Get("/{reportID}", srv.handleGetReport)
			r.With(srv.require(user.PermReportsWrite)).Delete("/{reportID}", srv.handleDeleteReport)
			r.With(srv.require(user.PermReportsRead)).Get("/{reportID}/export", srv.handleExportReport)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// require enforces a permission for user-scoped tokens. Tenant-level
// service keys carry no user and pass every check.
func (s *Server) require(perm user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := IdentityFromContext(r.Context())
			if !ok || id.TenantID == "" {
				writeError(w, http.StatusUnauthorized, "missing tenant")
				return
			}
			if id.UserID != "" {
				allowed, err := s.svc.Users.HasPermission(r.Context(), id.TenantID, id.UserID, perm)
				if err != nil {
					writeDomainError(w, err)
					return
				}
				if !allowed {
					writeError(w, http.StatusForbidden, "permission denied")
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// identity returns the caller identity or writes a 401.
func (s *Server) identity(w http.ResponseWriter, r *http.Request) (Identity, bool) {
	id, ok := IdentityFromContext(r.Context())
	if !ok || id.TenantID == "" {
		writeError(w, http.StatusUnauthorized, "missing tenant")
		return Identity{}, false
	}
	return id, true
}
