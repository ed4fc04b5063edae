package notification

import "context"

// Repository provides persistence operations for notifications.
type Repository interface {
	Log(ctx context.Context, tenantID string, n *Notification) error
	List(ctx context.Context, tenantID string, opts ListOptions) ([]Notification, error)
	MarkRead(ctx context.Context, tenantID string, id int64) error
}
