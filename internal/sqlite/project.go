package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sitehero/sitehero/internal/domain/project"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	query := `
		INSERT INTO projects (id, tenant_id, name, description, address, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		proj.ID,
		tenantID,
		proj.Name,
		proj.Description,
		proj.Address,
		proj.Status,
		proj.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	query := `
		SELECT id, tenant_id, name, description, address, status, created_at
		FROM projects
		WHERE id = ? AND tenant_id = ?
	`

	var proj project.Project
	err := r.db.QueryRowContext(ctx, query, id, tenantID).Scan(
		&proj.ID,
		&proj.TenantID,
		&proj.Name,
		&proj.Description,
		&proj.Address,
		&proj.Status,
		&proj.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &proj, nil
}

// Update updates a project's mutable fields
func (r *ProjectRepository) Update(ctx context.Context, tenantID string, proj *project.Project) error {
	query := `
		UPDATE projects
		SET name = ?, description = ?, address = ?, status = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		proj.Name,
		proj.Description,
		proj.Address,
		proj.Status,
		proj.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
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

// List returns all projects for a tenant with summary information
func (r *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Summary, error) {
	query := `
		SELECT
			p.id,
			p.name,
			p.address,
			p.status,
			p.created_at,
			COUNT(DISTINCT rf.id) as rfi_count,
			COUNT(DISTINCT CASE WHEN rf.status IN ('draft', 'submitted') THEN rf.id END) as open_rfis,
			COUNT(DISTINCT CASE WHEN pi.status IN ('open', 'in_progress', 'ready_for_review') THEN pi.id END) as open_punch_items
		FROM projects p
		LEFT JOIN rfis rf ON rf.project_id = p.id AND rf.tenant_id = p.tenant_id
		LEFT JOIN punch_items pi ON pi.project_id = p.id AND pi.tenant_id = p.tenant_id
		WHERE p.tenant_id = ?
		GROUP BY p.id, p.name, p.address, p.status, p.created_at
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var summaries []project.Summary
	for rows.Next() {
		var summary project.Summary
		err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Address,
			&summary.Status,
			&summary.CreatedAt,
			&summary.RFICount,
			&summary.OpenRFIs,
			&summary.OpenPunchItems,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project summary: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return summaries, nil
}

// EnsureWorkflowType registers a workflow type on a project if missing
func (r *ProjectRepository) EnsureWorkflowType(ctx context.Context, tenantID, projectID string, wt project.WorkflowType) error {
	query := `
		INSERT INTO workflow_types (tenant_id, project_id, key, prefix, next_number)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (project_id, key) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, tenantID, projectID, wt.Key, wt.Prefix, wt.NextNumber)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to ensure workflow type: %w", err)
	}

	return nil
}

// GetWorkflowType retrieves a workflow type configuration
func (r *ProjectRepository) GetWorkflowType(ctx context.Context, tenantID, projectID, key string) (*project.WorkflowType, error) {
	query := `
		SELECT key, prefix, next_number
		FROM workflow_types
		WHERE project_id = ? AND key = ? AND tenant_id = ?
	`

	var wt project.WorkflowType
	err := r.db.QueryRowContext(ctx, query, projectID, key, tenantID).Scan(
		&wt.Key,
		&wt.Prefix,
		&wt.NextNumber,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workflow type: %w", err)
	}

	return &wt, nil
}

// NextNumber atomically allocates the next sequence number for a
// workflow type
func (r *ProjectRepository) NextNumber(ctx context.Context, tenantID, projectID, key string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	updateQuery := `
		UPDATE workflow_types
		SET next_number = next_number + 1
		WHERE project_id = ? AND key = ? AND tenant_id = ?
	`

	result, err := tx.ExecContext(ctx, updateQuery, projectID, key, tenantID)
	if err != nil {
		return 0, fmt.Errorf("failed to advance number: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return 0, repository.ErrNotFound
	}

	selectQuery := `
		SELECT next_number - 1
		FROM workflow_types
		WHERE project_id = ? AND key = ? AND tenant_id = ?
	`

	var number int
	if err := tx.QueryRowContext(ctx, selectQuery, projectID, key, tenantID).Scan(&number); err != nil {
		return 0, fmt.Errorf("failed to read allocated number: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return number, nil
}

// NumberingScheme returns the display numbering scheme for a workflow type
func (r *ProjectRepository) NumberingScheme(ctx context.Context, tenantID, projectID, key string) (rfi.NumberingScheme, error) {
	wt, err := r.GetWorkflowType(ctx, tenantID, projectID, key)
	if err != nil {
		return rfi.NumberingScheme{}, err
	}
	return rfi.NumberingScheme{Prefix: wt.Prefix}, nil
}
