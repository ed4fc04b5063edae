package report_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitehero/sitehero/internal/domain/dailyreport"
	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/report"
	"github.com/sitehero/sitehero/internal/repository"
	"github.com/sitehero/sitehero/internal/repository/mocks"
)

type rfiViewer struct {
	mock.Mock
}

func (m *rfiViewer) View(ctx context.Context, tenantID, projectID string, criteria rfi.FilterCriteria, now time.Time) (rfi.ViewModel, error) {
	args := m.Called(ctx, tenantID, projectID, criteria, now)
	return args.Get(0).(rfi.ViewModel), args.Error(1)
}

type punchViewer struct {
	mock.Mock
}

func (m *punchViewer) View(ctx context.Context, tenantID, projectID string, now time.Time) ([]punchlist.ViewItem, punchlist.Statistics, error) {
	args := m.Called(ctx, tenantID, projectID, now)
	return args.Get(0).([]punchlist.ViewItem), args.Get(1).(punchlist.Statistics), args.Error(2)
}

type dailyLister struct {
	mock.Mock
}

func (m *dailyLister) ListByRange(ctx context.Context, tenantID, projectID string, from, to time.Time) ([]dailyreport.DailyReport, error) {
	args := m.Called(ctx, tenantID, projectID, from, to)
	return args.Get(0).([]dailyreport.DailyReport), args.Error(1)
}

func TestBuilder_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	defs := &mocks.ReportDefinitionRepository{}
	defs.On("Create", ctx, tenantID, mock.Anything).Return(nil)

	b := report.NewBuilder(defs, nil, nil, nil, nil)
	def, err := b.Create(ctx, tenantID, report.CreateRequest{
		ProjectID: "proj1",
		Name:      "Open RFIs",
		Source:    "rfis",
		Columns:   []string{"number", "title", "status"},
	})
	require.NoError(t, err)
	require.Equal(t, report.SourceRFIs, def.Source)
	require.NotEmpty(t, def.ID)
}

func TestBuilder_Create_Invalid(t *testing.T) {
	ctx := context.Background()
	b := report.NewBuilder(&mocks.ReportDefinitionRepository{}, nil, nil, nil, nil)

	_, err := b.Create(ctx, "tenant1", report.CreateRequest{
		ProjectID: "proj1", Name: "r", Source: "timesheets", Columns: []string{"date"},
	})
	require.ErrorIs(t, err, report.ErrInvalidSource)

	_, err = b.Create(ctx, "tenant1", report.CreateRequest{
		ProjectID: "proj1", Name: "r", Source: "rfis", Columns: []string{"number", "weather"},
	})
	require.ErrorIs(t, err, report.ErrInvalidColumn)

	_, err = b.Create(ctx, "tenant1", report.CreateRequest{
		ProjectID: "proj1", Name: "r", Source: "rfis",
	})
	require.ErrorIs(t, err, report.ErrInvalidInput)
}

func TestBuilder_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	defs := &mocks.ReportDefinitionRepository{}
	defs.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	b := report.NewBuilder(defs, nil, nil, nil, nil)
	_, err := b.Get(ctx, "tenant1", "missing")
	require.ErrorIs(t, err, report.ErrNotFound)
}

func TestBuilder_Build_RFIs(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	vm := rfi.ViewModel{Items: []rfi.ViewItem{
		{
			RFI:           rfi.RFI{Number: 1, Title: "Anchor detail", Status: rfi.StatusSubmitted, Priority: rfi.PriorityHigh},
			DisplayNumber: "RFI-001",
			DueDateInfo:   rfi.DueDateInfo{Text: "Due today"},
		},
	}}

	rfis := &rfiViewer{}
	rfis.On("View", ctx, tenantID, "proj1", rfi.FilterCriteria{
		Status:   rfi.StatusFilter("submitted"),
		Priority: rfi.PriorityFilterAll,
	}, now).Return(vm, nil)

	def := &report.Definition{
		ID: "d1", ProjectID: "proj1", Name: "Submitted RFIs",
		Source:  report.SourceRFIs,
		Columns: []string{"number", "title", "due"},
		Status:  "submitted",
	}

	b := report.NewBuilder(&mocks.ReportDefinitionRepository{}, rfis, nil, nil, nil)
	table, err := b.Build(ctx, tenantID, def, now)
	require.NoError(t, err)
	require.Equal(t, "Submitted RFIs", table.Title)
	require.Equal(t, []string{"number", "title", "due"}, table.Headers)
	require.Equal(t, [][]string{{"RFI-001", "Anchor detail", "Due today"}}, table.Rows)
}

func TestBuilder_Build_PunchItemsStatusFilter(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"
	now := time.Now()

	items := []punchlist.ViewItem{
		{PunchItem: punchlist.PunchItem{Number: 1, Title: "Paint", Status: punchlist.StatusOpen}, DisplayNumber: "PL-001"},
		{PunchItem: punchlist.PunchItem{Number: 2, Title: "Caulk", Status: punchlist.StatusResolved}, DisplayNumber: "PL-002"},
	}

	punch := &punchViewer{}
	punch.On("View", ctx, tenantID, "proj1", now).Return(items, punchlist.Statistics{}, nil)

	def := &report.Definition{
		ID: "d1", ProjectID: "proj1", Name: "Open punch items",
		Source:  report.SourcePunchItems,
		Columns: []string{"number", "title"},
		Status:  "open",
	}

	b := report.NewBuilder(&mocks.ReportDefinitionRepository{}, nil, punch, nil, nil)
	table, err := b.Build(ctx, tenantID, def, now)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"PL-001", "Paint"}}, table.Rows)
}

func TestBuilder_Build_DailyReports(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	reports := []dailyreport.DailyReport{
		{ReportDate: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), Weather: "clear", WorkforceCount: 24},
	}

	dailies := &dailyLister{}
	dailies.On("ListByRange", ctx, tenantID, "proj1", now.AddDate(-1, 0, 0), now).Return(reports, nil)

	def := &report.Definition{
		ID: "d1", ProjectID: "proj1", Name: "Daily log",
		Source:  report.SourceDailyReports,
		Columns: []string{"date", "weather", "workforce"},
	}

	b := report.NewBuilder(&mocks.ReportDefinitionRepository{}, nil, nil, dailies, nil)
	table, err := b.Build(ctx, tenantID, def, now)
	require.NoError(t, err)
	require.Equal(t, [][]string{{"2026-03-09", "clear", "24"}}, table.Rows)
}
