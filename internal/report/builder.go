package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sitehero/sitehero/internal/domain/dailyreport"
	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/repository"
)

// Repository provides persistence for report definitions.
type Repository interface {
	Create(ctx context.Context, tenantID string, def *Definition) error
	Get(ctx context.Context, tenantID, id string) (*Definition, error)
	List(ctx context.Context, tenantID string) ([]Definition, error)
	Delete(ctx context.Context, tenantID, id string) error
}

// RFIViewer produces the RFI view model a report renders from.
type RFIViewer interface {
	View(ctx context.Context, tenantID, projectID string, criteria rfi.FilterCriteria, now time.Time) (rfi.ViewModel, error)
}

// PunchViewer produces punch-list view items.
type PunchViewer interface {
	View(ctx context.Context, tenantID, projectID string, now time.Time) ([]punchlist.ViewItem, punchlist.Statistics, error)
}

// DailyReportLister lists daily reports for a date range.
type DailyReportLister interface {
	ListByRange(ctx context.Context, tenantID, projectID string, from, to time.Time) ([]dailyreport.DailyReport, error)
}

// Builder persists report definitions and resolves them into tables.
type Builder struct {
	defs    Repository
	rfis    RFIViewer
	punch   PunchViewer
	dailies DailyReportLister
	logger  *slog.Logger
}

// NewBuilder creates a report builder.
func NewBuilder(defs Repository, rfis RFIViewer, punch PunchViewer, dailies DailyReportLister, logger *slog.Logger) *Builder {
	return &Builder{defs: defs, rfis: rfis, punch: punch, dailies: dailies, logger: logger}
}

// CreateRequest defines report definition inputs.
type CreateRequest struct {
	ProjectID string
	Name      string
	Source    string
	Columns   []string
	Status    string
	Priority  string
}

// Create validates and saves a report definition.
func (b *Builder) Create(ctx context.Context, tenantID string, req CreateRequest) (*Definition, error) {
	source, err := ParseSource(req.Source)
	if err != nil {
		return nil, err
	}

	def := &Definition{
		ID:        uuid.NewString(),
		TenantID:  tenantID,
		ProjectID: req.ProjectID,
		Name:      req.Name,
		Source:    source,
		Columns:   req.Columns,
		Status:    req.Status,
		Priority:  req.Priority,
		CreatedAt: time.Now(),
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}

	if err := b.defs.Create(ctx, tenantID, def); err != nil {
		return nil, fmt.Errorf("saving report definition: %w", err)
	}
	return def, nil
}

// Get returns a report definition by ID.
func (b *Builder) Get(ctx context.Context, tenantID, id string) (*Definition, error) {
	def, err := b.defs.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting report definition: %w", err)
	}
	return def, nil
}

// List returns all report definitions of a tenant.
func (b *Builder) List(ctx context.Context, tenantID string) ([]Definition, error) {
	return b.defs.List(ctx, tenantID)
}

// Delete removes a report definition.
func (b *Builder) Delete(ctx context.Context, tenantID, id string) error {
	if err := b.defs.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting report definition: %w", err)
	}
	return nil
}

// Build resolves a definition into a table at the given instant.
func (b *Builder) Build(ctx context.Context, tenantID string, def *Definition, now time.Time) (*Table, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}

	switch def.Source {
	case SourceRFIs:
		return b.buildRFIs(ctx, tenantID, def, now)
	case SourcePunchItems:
		return b.buildPunchItems(ctx, tenantID, def, now)
	case SourceDailyReports:
		return b.buildDailyReports(ctx, tenantID, def, now)
	}
	return nil, ErrInvalidSource
}

func (b *Builder) buildRFIs(ctx context.Context, tenantID string, def *Definition, now time.Time) (*Table, error) {
	status, err := rfi.ParseStatusFilter(def.Status)
	if err != nil {
		return nil, err
	}
	priority, err := rfi.ParsePriorityFilter(def.Priority)
	if err != nil {
		return nil, err
	}

	vm, err := b.rfis.View(ctx, tenantID, def.ProjectID, rfi.FilterCriteria{
		Status:   status,
		Priority: priority,
	}, now)
	if err != nil {
		return nil, fmt.Errorf("building rfi report: %w", err)
	}

	table := &Table{Title: def.Name, Headers: def.Columns}
	for _, item := range vm.Items {
		row := make([]string, 0, len(def.Columns))
		for _, col := range def.Columns {
			row = append(row, rfiCell(item, col))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func (b *Builder) buildPunchItems(ctx context.Context, tenantID string, def *Definition, now time.Time) (*Table, error) {
	items, _, err := b.punch.View(ctx, tenantID, def.ProjectID, now)
	if err != nil {
		return nil, fmt.Errorf("building punch report: %w", err)
	}

	table := &Table{Title: def.Name, Headers: def.Columns}
	for _, item := range items {
		if def.Status != "" && string(item.PunchItem.Status) != def.Status {
			continue
		}
		row := make([]string, 0, len(def.Columns))
		for _, col := range def.Columns {
			row = append(row, punchCell(item, col))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func (b *Builder) buildDailyReports(ctx context.Context, tenantID string, def *Definition, now time.Time) (*Table, error) {
	// Reports cover the trailing year by default.
	from := now.AddDate(-1, 0, 0)
	reports, err := b.dailies.ListByRange(ctx, tenantID, def.ProjectID, from, now)
	if err != nil {
		return nil, fmt.Errorf("building daily report export: %w", err)
	}

	table := &Table{Title: def.Name, Headers: def.Columns}
	for _, rep := range reports {
		row := make([]string, 0, len(def.Columns))
		for _, col := range def.Columns {
			row = append(row, dailyCell(rep, col))
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func rfiCell(item rfi.ViewItem, col string) string {
	switch col {
	case "number":
		return item.DisplayNumber
	case "title":
		return item.RFI.Title
	case "status":
		return string(item.RFI.Status)
	case "priority":
		return string(item.RFI.Priority)
	case "due":
		return item.DueDateInfo.Text
	case "reference":
		return item.RFI.ReferenceNumber
	case "created":
		return item.RFI.CreatedAt.Format("2006-01-02")
	}
	return ""
}

func punchCell(item punchlist.ViewItem, col string) string {
	switch col {
	case "number":
		return item.DisplayNumber
	case "title":
		return item.PunchItem.Title
	case "status":
		return string(item.PunchItem.Status)
	case "priority":
		return string(item.PunchItem.Priority)
	case "location":
		return item.PunchItem.Location
	case "trade":
		return item.PunchItem.Trade
	case "due":
		return item.DueDateInfo.Text
	}
	return ""
}

func dailyCell(rep dailyreport.DailyReport, col string) string {
	switch col {
	case "date":
		return rep.ReportDate.Format("2006-01-02")
	case "weather":
		return rep.Weather
	case "workforce":
		return strconv.Itoa(rep.WorkforceCount)
	case "work_performed":
		return rep.WorkPerformed
	case "delays":
		return rep.Delays
	case "safety_incidents":
		return rep.SafetyIncidents
	case "notes":
		return rep.Notes
	}
	return ""
}
