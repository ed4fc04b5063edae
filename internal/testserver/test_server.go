package testserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

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

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Token    string
	TenantID string
	Users    *user.Service
}

func New(t *testing.T, token, tenantID string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	projectRepo := sqlite.NewProjectRepository(db)
	rfiRepo := sqlite.NewRFIRepository(db)
	dailyRepo := sqlite.NewDailyReportRepository(db)
	punchRepo := sqlite.NewPunchItemRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	notificationRepo := sqlite.NewNotificationRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)
	reportRepo := sqlite.NewReportDefinitionRepository(db)

	projectSvc := project.NewService(projectRepo, nil)
	rfiSvc := rfi.NewService(rfiRepo, projectRepo, notificationRepo, searchRepo, nil)
	dailySvc := dailyreport.NewService(dailyRepo, notificationRepo, nil)
	punchSvc := punchlist.NewService(punchRepo, projectRepo, notificationRepo, nil)
	userSvc := user.NewService(userRepo, nil)
	notificationSvc := notification.NewService(notificationRepo, nil)
	reportSvc := report.NewBuilder(reportRepo, rfiSvc, punchSvc, dailySvc, nil)

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
	server := httptest.NewServer(transport.NewServer(svcs, transport.AuthMiddleware(resolver), nil))

	ts := &TestServer{
		Server:   server,
		DB:       db,
		Token:    token,
		TenantID: tenantID,
		Users:    userSvc,
	}

	require.NoError(t, ts.AddAPIKey(token, tenantID, ""))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// AddAPIKey registers a bearer token. An empty userID makes a
// tenant-level service key.
func (ts *TestServer) AddAPIKey(token, tenantID, userID string) error {
	hash := hashToken(token)
	_, err := ts.DB.Exec(
		`INSERT INTO api_keys (key_hash, tenant_id, user_id, created_at) VALUES (?, ?, ?, ?)`,
		hash, tenantID, nullable(userID), time.Now(),
	)
	return err
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
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
		return transport.Identity{}, transport.ErrUnauthorized
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
