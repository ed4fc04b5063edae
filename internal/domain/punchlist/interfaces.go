package punchlist

import (
	"context"

	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/domain/rfi"
)

// Repository provides persistence for punch-list items.
type Repository interface {
	Create(ctx context.Context, tenantID string, item *PunchItem) error
	Get(ctx context.Context, tenantID, id string) (*PunchItem, error)
	Update(ctx context.Context, tenantID string, item *PunchItem) error
	ListByProject(ctx context.Context, tenantID, projectID string) ([]PunchItem, error)
}

// ProjectRepository provides numbering for punch items.
type ProjectRepository interface {
	NextNumber(ctx context.Context, tenantID, projectID, workflowKey string) (int, error)
	NumberingScheme(ctx context.Context, tenantID, projectID, workflowKey string) (rfi.NumberingScheme, error)
}

// NotificationRepository records workflow events for users.
type NotificationRepository interface {
	Log(ctx context.Context, tenantID string, n *notification.Notification) error
}
