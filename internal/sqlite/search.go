package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sitehero/sitehero/internal/domain/rfi"
)

// SearchRepository implements rfi.SearchRepository for SQLite
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// SearchRFIs performs a full-text search over a project's RFIs,
// best match first.
func (r *SearchRepository) SearchRFIs(ctx context.Context, tenantID, projectID, query string, opts rfi.SearchOptions) ([]rfi.SearchResult, error) {
	baseQuery := `
		SELECT
			r.id, r.tenant_id, r.project_id, r.number, r.title, r.description,
			r.reference_number, r.status, r.priority, r.due_date, r.created_at, r.modified_at,
			bm25(rfis_fts) as rank,
			snippet(rfis_fts, 0, '[', ']', '…', 8) as snippet
		FROM rfis_fts
		JOIN rfis r ON r.rowid = rfis_fts.rowid
		WHERE r.tenant_id = ? AND r.project_id = ? AND rfis_fts MATCH ?
		ORDER BY rank
	`

	args := []any{tenantID, projectID, query}

	if opts.Limit > 0 {
		baseQuery += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		baseQuery += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, baseQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search rfis: %w", err)
	}
	defer rows.Close()

	var results []rfi.SearchResult
	for rows.Next() {
		var result rfi.SearchResult
		var due sql.NullTime
		err := rows.Scan(
			&result.RFI.ID,
			&result.RFI.TenantID,
			&result.RFI.ProjectID,
			&result.RFI.Number,
			&result.RFI.Title,
			&result.RFI.Description,
			&result.RFI.ReferenceNumber,
			&result.RFI.Status,
			&result.RFI.Priority,
			&due,
			&result.RFI.CreatedAt,
			&result.RFI.ModifiedAt,
			&result.Rank,
			&result.Snippet,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		if due.Valid {
			t := due.Time
			result.RFI.DueDate = &t
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}

	return results, nil
}
