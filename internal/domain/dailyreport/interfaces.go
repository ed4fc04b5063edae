package dailyreport

import (
	"context"
	"time"

	"github.com/sitehero/sitehero/internal/domain/notification"
)

// Repository provides persistence for daily reports.
type Repository interface {
	Create(ctx context.Context, tenantID string, rep *DailyReport) error
	Get(ctx context.Context, tenantID, id string) (*DailyReport, error)
	Update(ctx context.Context, tenantID string, rep *DailyReport) error
	Delete(ctx context.Context, tenantID, id string) error
	ListByRange(ctx context.Context, tenantID, projectID string, from, to time.Time) ([]DailyReport, error)
}

// NotificationRepository records workflow events for users.
type NotificationRepository interface {
	Log(ctx context.Context, tenantID string, n *notification.Notification) error
}
