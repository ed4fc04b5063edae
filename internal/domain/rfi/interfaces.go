package rfi

import (
	"context"

	"github.com/sitehero/sitehero/internal/domain/notification"
)

// Repository provides persistence for RFIs.
type Repository interface {
	Create(ctx context.Context, tenantID string, r *RFI) error
	Get(ctx context.Context, tenantID, id string) (*RFI, error)
	Update(ctx context.Context, tenantID string, r *RFI) error
	Delete(ctx context.Context, tenantID, id string) error
	ListByProject(ctx context.Context, tenantID, projectID string) ([]RFI, error)
}

// ProjectRepository provides numbering and scheme lookups for RFIs.
type ProjectRepository interface {
	NextNumber(ctx context.Context, tenantID, projectID, workflowKey string) (int, error)
	NumberingScheme(ctx context.Context, tenantID, projectID, workflowKey string) (NumberingScheme, error)
}

// NotificationRepository records workflow events for users.
type NotificationRepository interface {
	Log(ctx context.Context, tenantID string, n *notification.Notification) error
}

// SearchRepository performs full-text search over RFIs.
type SearchRepository interface {
	SearchRFIs(ctx context.Context, tenantID, projectID, query string, opts SearchOptions) ([]SearchResult, error)
}

// SearchOptions provides paging for full-text search.
type SearchOptions struct {
	Limit  int
	Offset int
}
