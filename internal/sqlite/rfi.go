package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/repository"
)

// RFIRepository implements rfi.Repository for SQLite
type RFIRepository struct {
	db *DB
}

// NewRFIRepository creates a new RFIRepository
func NewRFIRepository(db *DB) *RFIRepository {
	return &RFIRepository{db: db}
}

// Create creates a new RFI
func (r *RFIRepository) Create(ctx context.Context, tenantID string, item *rfi.RFI) error {
	query := `
		INSERT INTO rfis (
			id, tenant_id, project_id, number, title, description,
			reference_number, status, priority, due_date, created_at, modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
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
		item.ReferenceNumber,
		item.Status,
		priority,
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
		return fmt.Errorf("failed to create rfi: %w", err)
	}

	return nil
}

// Get retrieves an RFI by ID
func (r *RFIRepository) Get(ctx context.Context, tenantID, id string) (*rfi.RFI, error) {
	query := `
		SELECT id, tenant_id, project_id, number, title, description,
		       reference_number, status, priority, due_date, created_at, modified_at
		FROM rfis
		WHERE id = ? AND tenant_id = ?
	`

	item, err := scanRFI(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rfi: %w", err)
	}

	return item, nil
}

// Update updates an RFI's mutable fields
func (r *RFIRepository) Update(ctx context.Context, tenantID string, item *rfi.RFI) error {
	query := `
		UPDATE rfis
		SET title = ?, description = ?, reference_number = ?,
		    status = ?, priority = ?, due_date = ?, modified_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.Description,
		item.ReferenceNumber,
		item.Status,
		item.Priority,
		nullableTime(item.DueDate),
		item.ModifiedAt,
		item.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rfi: %w", err)
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

// Delete deletes an RFI
func (r *RFIRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rfis WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete rfi: %w", err)
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

// ListByProject returns a project's RFIs in creation order
func (r *RFIRepository) ListByProject(ctx context.Context, tenantID, projectID string) ([]rfi.RFI, error) {
	query := `
		SELECT id, tenant_id, project_id, number, title, description,
		       reference_number, status, priority, due_date, created_at, modified_at
		FROM rfis
		WHERE project_id = ? AND tenant_id = ?
		ORDER BY number ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rfis: %w", err)
	}
	defer rows.Close()

	var items []rfi.RFI
	for rows.Next() {
		item, err := scanRFI(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rfi: %w", err)
		}
		items = append(items, *item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rfi rows: %w", err)
	}

	return items, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRFI(row scanner) (*rfi.RFI, error) {
	var item rfi.RFI
	var due sql.NullTime
	err := row.Scan(
		&item.ID,
		&item.TenantID,
		&item.ProjectID,
		&item.Number,
		&item.Title,
		&item.Description,
		&item.ReferenceNumber,
		&item.Status,
		&item.Priority,
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

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
