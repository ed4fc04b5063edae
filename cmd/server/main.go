package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sitehero/sitehero/internal/config"
	"github.com/sitehero/sitehero/internal/domain/dailyreport"
	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/domain/project"
	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/domain/user"
	"github.com/sitehero/sitehero/internal/report"
	"github.com/sitehero/sitehero/internal/sqlite"
	"github.com/sitehero/sitehero/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		logger.Error("failed to prepare database path", "error", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	projectRepo := sqlite.NewProjectRepository(db)
	rfiRepo := sqlite.NewRFIRepository(db)
	dailyRepo := sqlite.NewDailyReportRepository(db)
	punchRepo := sqlite.NewPunchItemRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	notificationRepo := sqlite.NewNotificationRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)
	reportRepo := sqlite.NewReportDefinitionRepository(db)

	projectSvc := project.NewService(projectRepo, logger)
	rfiSvc := rfi.NewService(rfiRepo, projectRepo, notificationRepo, searchRepo, logger)
	dailySvc := dailyreport.NewService(dailyRepo, notificationRepo, logger)
	punchSvc := punchlist.NewService(punchRepo, projectRepo, notificationRepo, logger)
	userSvc := user.NewService(userRepo, logger)
	notificationSvc := notification.NewService(notificationRepo, logger)
	reportSvc := report.NewBuilder(reportRepo, rfiSvc, punchSvc, dailySvc, logger)

	svcs := transport.Services{
		Projects:      projectSvc,
		RFIs:          rfiSvc,
		DailyReports:  dailySvc,
		PunchItems:    punchSvc,
		Users:         userSvc,
		Notifications: notificationSvc,
		Reports:       reportSvc,
	}

	resolver := &apiKeyResolver{db: db}
	router := transport.NewServer(svcs, transport.AuthMiddleware(resolver), logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func ensureDBDir(path string) error {
	if path == ":memory:" || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type apiKeyResolver struct {
	db *sqlite.DB
}

func (r *apiKeyResolver) ResolveIdentity(ctx context.Context, token string) (transport.Identity, error) {
	hash := hashToken(token)
	var tenantID string
	var userID *string
	err := r.db.QueryRowContext(ctx,
		`SELECT tenant_id, user_id FROM api_keys WHERE key_hash = ?`, hash,
	).Scan(&tenantID, &userID)
	if err != nil || tenantID == "" {
		return transport.Identity{}, fmt.Errorf("unauthorized: invalid token")
	}
	id := transport.Identity{TenantID: tenantID}
	if userID != nil {
		id.UserID = *userID
	}
	return id, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
