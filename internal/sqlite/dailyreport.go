package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sitehero/sitehero/internal/domain/dailyreport"
	"github.com/sitehero/sitehero/internal/repository"
)

// DailyReportRepository implements dailyreport.Repository for SQLite
type DailyReportRepository struct {
	db *DB
}

// NewDailyReportRepository creates a new DailyReportRepository
func NewDailyReportRepository(db *DB) *DailyReportRepository {
	return &DailyReportRepository{db: db}
}

// Create creates a new daily report
func (r *DailyReportRepository) Create(ctx context.Context, tenantID string, rep *dailyreport.DailyReport) error {
	query := `
		INSERT INTO daily_reports (
			id, tenant_id, project_id, report_date, weather, temperature_c,
			workforce_count, work_performed, delays, safety_incidents, notes,
			created_by, created_at, modified_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		rep.ID,
		tenantID,
		rep.ProjectID,
		rep.ReportDate,
		rep.Weather,
		nullableFloat(rep.TemperatureC),
		rep.WorkforceCount,
		rep.WorkPerformed,
		rep.Delays,
		rep.SafetyIncidents,
		rep.Notes,
		rep.CreatedBy,
		rep.CreatedAt,
		rep.ModifiedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create daily report: %w", err)
	}

	return nil
}

// Get retrieves a daily report by ID
func (r *DailyReportRepository) Get(ctx context.Context, tenantID, id string) (*dailyreport.DailyReport, error) {
	query := `
		SELECT id, tenant_id, project_id, report_date, weather, temperature_c,
		       workforce_count, work_performed, delays, safety_incidents, notes,
		       created_by, created_at, modified_at
		FROM daily_reports
		WHERE id = ? AND tenant_id = ?
	`

	rep, err := scanDailyReport(r.db.QueryRowContext(ctx, query, id, tenantID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get daily report: %w", err)
	}

	return rep, nil
}

// Update updates a daily report's mutable fields
func (r *DailyReportRepository) Update(ctx context.Context, tenantID string, rep *dailyreport.DailyReport) error {
	query := `
		UPDATE daily_reports
		SET weather = ?, temperature_c = ?, workforce_count = ?,
		    work_performed = ?, delays = ?, safety_incidents = ?, notes = ?,
		    modified_at = ?
		WHERE id = ? AND tenant_id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		rep.Weather,
		nullableFloat(rep.TemperatureC),
		rep.WorkforceCount,
		rep.WorkPerformed,
		rep.Delays,
		rep.SafetyIncidents,
		rep.Notes,
		rep.ModifiedAt,
		rep.ID,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update daily report: %w", err)
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

// Delete deletes a daily report
func (r *DailyReportRepository) Delete(ctx context.Context, tenantID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM daily_reports WHERE id = ? AND tenant_id = ?`, id, tenantID)
	if err != nil {
		return fmt.Errorf("failed to delete daily report: %w", err)
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

// ListByRange returns a project's reports between from and to inclusive
func (r *DailyReportRepository) ListByRange(ctx context.Context, tenantID, projectID string, from, to time.Time) ([]dailyreport.DailyReport, error) {
	query := `
		SELECT id, tenant_id, project_id, report_date, weather, temperature_c,
		       workforce_count, work_performed, delays, safety_incidents, notes,
		       created_by, created_at, modified_at
		FROM daily_reports
		WHERE project_id = ? AND tenant_id = ? AND report_date >= ? AND report_date <= ?
		ORDER BY report_date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, projectID, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily reports: %w", err)
	}
	defer rows.Close()

	var reports []dailyreport.DailyReport
	for rows.Next() {
		rep, err := scanDailyReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily report: %w", err)
		}
		reports = append(reports, *rep)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily report rows: %w", err)
	}

	return reports, nil
}

func scanDailyReport(row scanner) (*dailyreport.DailyReport, error) {
	var rep dailyreport.DailyReport
	var temp sql.NullFloat64
	err := row.Scan(
		&rep.ID,
		&rep.TenantID,
		&rep.ProjectID,
		&rep.ReportDate,
		&rep.Weather,
		&temp,
		&rep.WorkforceCount,
		&rep.WorkPerformed,
		&rep.Delays,
		&rep.SafetyIncidents,
		&rep.Notes,
		&rep.CreatedBy,
		&rep.CreatedAt,
		&rep.ModifiedAt,
	)
	if err != nil {
		return nil, err
	}
	if temp.Valid {
		v := temp.Float64
		rep.TemperatureC = &v
	}
	return &rep, nil
}

func nullableFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
