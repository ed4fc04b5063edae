package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/repository"
)

// NotificationRepository implements notification.Repository for SQLite
type NotificationRepository struct {
	db *DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Log appends a notification to the feed. The generated row ID is
// written back to n.ID.
func (r *NotificationRepository) Log(ctx context.Context, tenantID string, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (tenant_id, project_id, user_id, kind, summary, ref_id, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		tenantID,
		n.ProjectID,
		nullableString(n.UserID),
		n.Kind,
		n.Summary,
		nullableString(n.RefID),
		n.Read,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get notification id: %w", err)
	}
	n.ID = id

	return nil
}

// List returns notifications matching the options, newest first.
func (r *NotificationRepository) List(ctx context.Context, tenantID string, opts notification.ListOptions) ([]notification.Notification, error) {
	conditions := []string{"tenant_id = ?"}
	args := []any{tenantID}

	if opts.ProjectID != "" {
		conditions = append(conditions, "project_id = ?")
		args = append(args, opts.ProjectID)
	}
	if opts.UserID != "" {
		conditions = append(conditions, "(user_id = ? OR user_id IS NULL)")
		args = append(args, opts.UserID)
	}
	if opts.UnreadOnly {
		conditions = append(conditions, "read = 0")
	}

	query := `
		SELECT id, tenant_id, project_id, user_id, kind, summary, ref_id, read, created_at
		FROM notifications
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY created_at DESC, id DESC
	`

	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
		if opts.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, opts.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []notification.Notification
	for rows.Next() {
		var n notification.Notification
		var userID, refID sql.NullString
		err := rows.Scan(
			&n.ID,
			&n.TenantID,
			&n.ProjectID,
			&userID,
			&n.Kind,
			&n.Summary,
			&refID,
			&n.Read,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.UserID = userID.String
		n.RefID = refID.String
		notifications = append(notifications, n)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}

	return notifications, nil
}

// MarkRead marks a notification as read
func (r *NotificationRepository) MarkRead(ctx context.Context, tenantID string, id int64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET read = 1 WHERE id = ? AND tenant_id = ?`,
		id, tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
