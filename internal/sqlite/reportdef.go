package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sitehero/sitehero/internal/report"
	"github.com/sitehero/sitehero/internal/repository"
)

// ReportDefinitionRepository implements report.Repository for SQLite.
// Column lists are stored as a comma separated string since column
// keys never contain commas.
type ReportDefinitionRepository struct {
	db *DB
}

// NewReportDefinitionRepository creates a new ReportDefinitionRepository
func NewReportDefinitionRepository(db *DB) *ReportDefinitionRepository {
	return &ReportDefinitionRepository{db: db}
}

// Create persists a report definition
func (r *ReportDefinitionRepository) Create(ctx context.Context, tenantID string, def *report.Definition) error {
	query := `
		INSERT INTO report_definitions (id, tenant_id, project_id, name, source, columns, status, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		def.ID,
		tenantID,
		def.ProjectID,
		def.Name,
		def.Source,
		strings.Join(def.Columns, ","),
		nullableString(def.Status),
		nullableString(def.Priority),
		def.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create report definition: %w", err)
	}

	return nil
}

// Get retrieves a report definition by ID
func (r *ReportDefinitionRepository) Get(ctx context.Context, tenantID, id string) (*report.Definition, error) {
	query := `
		SELECT id, tenant_id, project_id, name, source, columns, status, priority, created_at
		FROM report_definitions
		WHERE id = ? AND tenant_id = ?
	`

	def, err := scanReportDefinition(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report definition: %w", err)
	}

	return def, nil
}

// List returns all report definitions for a tenant
func (r *ReportDefinitionRepository) List(ctx context.Context, tenantID string) ([]report.Definition, error) {
	query := `
		SELECT id, tenant_id, project_id, name, source, columns, status, priority, created_at
		FROM report_definitions
		WHERE tenant_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list report definitions: %w", err)
	}
	defer rows.Close()

	var defs []report.Definition
	for rows.Next() {
		def, err := scanReportDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report definition: %w", err)
		}
		defs = append(defs, *def)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report definition rows: %w", err)
	}

	return defs, nil
}

// Delete removes a report definition
func (r *ReportDefinitionRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM report_definitions WHERE id = ? AND tenant_id = ?`,
		id, tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete report definition: %w", err)
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

func scanReportDefinition(row scanner) (*report.Definition, error) {
	var def report.Definition
	var columns string
	var status, priority sql.NullString

	err := row.Scan(
		&def.ID,
		&def.TenantID,
		&def.ProjectID,
		&def.Name,
		&def.Source,
		&columns,
		&status,
		&priority,
		&def.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	def.Columns = strings.Split(columns, ",")
	def.Status = status.String
	def.Priority = priority.String

	return &def, nil
}
