package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/repository"
)

// PunchItemRepository implements punchlist.Repository for SQLite
type PunchItemRepository struct {
	db *DB
}

// NewPunchItemRepository creates a new PunchItemRepository
func NewPunchItemRepository(db *DB) *PunchItemRepository {
	return &PunchItemRepository{db: db}
}

// Create creates a new punch item
func (r *PunchItemRepository) Create(ctx context.Context, tenantID string, item *punchlist.PunchItem) error {
	query := `
		INSERT INTO punch_items (
			id, tenant_id, project_id, number, title, description, location,
			trade, status, priority, assignee_id, due_date, created_at, modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	priority := item.Priority
	if priority == "" {
		priority = rfi.PriorityNormal
	}

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		tenantID,
		item.ProjectID,
		item.Number,
		item.Title,
		item.Description,
		item.Location,
		item.Trade,
		item.Status,
		priority,
		item.AssigneeID,
		nullableTime(item.DueDate),
		item.CreatedAt,
		item.ModifiedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create punch item: %w", err)
	}

	return nil
}

// Get retrieves a punch item by ID
func (r *PunchItemRepository) Get(ctx context.Context, tenantID, id string) (*punchlist.PunchItem, error) {
	query := `
		SELECT id, tenant_id, project_id, number, title, description, location,
		       trade, status, priority, assignee_id, due_date, created_at, modified_at
		FROM punch_items
		WHERE id = ? AND tenant_id = ?
	`

	item, err := scanPunchItem(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get punch item: %w", err)
	}

	return item, nil
}

// Update updates a punch item's mutable fields
func (r *PunchItemRepository) Update(ctx context.Context, tenantID string, item *punchlist.PunchItem) error {
	query := `
		UPDATE punch_items
		SET title = ?, description = ?, location = ?, trade = ?, status = ?,
		    priority = ?, assignee_id = ?, due_date = ?, modified_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.Description,
		item.Location,
		item.Trade,
		item.Status,
		item.Priority,
		item.AssigneeID,
		nullableTime(item.DueDate),
		item.ModifiedAt,
		item.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update punch item: %w", err)
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

// ListByProject returns a project's punch items in number order
func (r *PunchItemRepository) ListByProject(ctx context.Context, tenantID, projectID string) ([]punchlist.PunchItem, error) {
	query := `
		SELECT id, tenant_id, project_id, number, title, description, location,
		       trade, status, priority, assignee_id, due_date, created_at, modified_at
		FROM punch_items
		WHERE project_id = ? AND tenant_id = ?
		ORDER BY number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch items: %w", err)
	}
	defer rows.Close()

	var items []punchlist.PunchItem
	for rows.Next() {
		item, err := scanPunchItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch item: %w", err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating punch item rows: %w", err)
	}

	return items, nil
}

func scanPunchItem(row scanner) (*punchlist.PunchItem, error) {
	var item punchlist.PunchItem
	var due sql.NullTime
	err := row.Scan(
		&item.ID,
		&item.TenantID,
		&item.ProjectID,
		&item.Number,
		&item.Title,
		&item.Description,
		&item.Location,
		&item.Trade,
		&item.Status,
		&item.Priority,
		&item.AssigneeID,
		&due,
		&item.CreatedAt,
		&item.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		t := due.Time
		item.DueDate = &t
	}
	return &item, nil
}
