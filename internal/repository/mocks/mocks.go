// Package mocks provides testify mocks for the domain repository
// interfaces, shared across service unit tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sitehero/sitehero/internal/domain/dailyreport"
	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/domain/project"
	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/domain/user"
	"github.com/sitehero/sitehero/internal/report"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, tenantID string, proj *project.Project) error {
	args := m.Called(ctx, tenantID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, tenantID, id string) (*project.Project, error) {
	args := m.Called(ctx, tenantID, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Update(ctx context.Context, tenantID string, proj *project.Project) error {
	args := m.Called(ctx, tenantID, proj)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context, tenantID string) ([]project.Summary, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]project.Summary); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) EnsureWorkflowType(ctx context.Context, tenantID, projectID string, wt project.WorkflowType) error {
	args := m.Called(ctx, tenantID, projectID, wt)
	return args.Error(0)
}

func (m *ProjectRepository) GetWorkflowType(ctx context.Context, tenantID, projectID, key string) (*project.WorkflowType, error) {
	args := m.Called(ctx, tenantID, projectID, key)
	if wt, ok := args.Get(0).(*project.WorkflowType); ok {
		return wt, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) NextNumber(ctx context.Context, tenantID, projectID, key string) (int, error) {
	args := m.Called(ctx, tenantID, projectID, key)
	return args.Int(0), args.Error(1)
}

func (m *ProjectRepository) NumberingScheme(ctx context.Context, tenantID, projectID, key string) (rfi.NumberingScheme, error) {
	args := m.Called(ctx, tenantID, projectID, key)
	return args.Get(0).(rfi.NumberingScheme), args.Error(1)
}

// RFIRepository is a mock for rfi.Repository.
type RFIRepository struct {
	mock.Mock
}

func (m *RFIRepository) Create(ctx context.Context, tenantID string, r *rfi.RFI) error {
	args := m.Called(ctx, tenantID, r)
	return args.Error(0)
}

func (m *RFIRepository) Get(ctx context.Context, tenantID, id string) (*rfi.RFI, error) {
	args := m.Called(ctx, tenantID, id)
	if r, ok := args.Get(0).(*rfi.RFI); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RFIRepository) Update(ctx context.Context, tenantID string, r *rfi.RFI) error {
	args := m.Called(ctx, tenantID, r)
	return args.Error(0)
}

func (m *RFIRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *RFIRepository) ListByProject(ctx context.Context, tenantID, projectID string) ([]rfi.RFI, error) {
	args := m.Called(ctx, tenantID, projectID)
	if list, ok := args.Get(0).([]rfi.RFI); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// DailyReportRepository is a mock for dailyreport.Repository.
type DailyReportRepository struct {
	mock.Mock
}

func (m *DailyReportRepository) Create(ctx context.Context, tenantID string, rep *dailyreport.DailyReport) error {
	args := m.Called(ctx, tenantID, rep)
	return args.Error(0)
}

func (m *DailyReportRepository) Get(ctx context.Context, tenantID, id string) (*dailyreport.DailyReport, error) {
	args := m.Called(ctx, tenantID, id)
	if rep, ok := args.Get(0).(*dailyreport.DailyReport); ok {
		return rep, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *DailyReportRepository) Update(ctx context.Context, tenantID string, rep *dailyreport.DailyReport) error {
	args := m.Called(ctx, tenantID, rep)
	return args.Error(0)
}

func (m *DailyReportRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *DailyReportRepository) ListByRange(ctx context.Context, tenantID, projectID string, from, to time.Time) ([]dailyreport.DailyReport, error) {
	args := m.Called(ctx, tenantID, projectID, from, to)
	if list, ok := args.Get(0).([]dailyreport.DailyReport); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PunchItemRepository is a mock for punchlist.Repository.
type PunchItemRepository struct {
	mock.Mock
}

func (m *PunchItemRepository) Create(ctx context.Context, tenantID string, item *punchlist.PunchItem) error {
	args := m.Called(ctx, tenantID, item)
	return args.Error(0)
}

func (m *PunchItemRepository) Get(ctx context.Context, tenantID, id string) (*punchlist.PunchItem, error) {
	args := m.Called(ctx, tenantID, id)
	if item, ok := args.Get(0).(*punchlist.PunchItem); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PunchItemRepository) Update(ctx context.Context, tenantID string, item *punchlist.PunchItem) error {
	args := m.Called(ctx, tenantID, item)
	return args.Error(0)
}

func (m *PunchItemRepository) ListByProject(ctx context.Context, tenantID, projectID string) ([]punchlist.PunchItem, error) {
	args := m.Called(ctx, tenantID, projectID)
	if list, ok := args.Get(0).([]punchlist.PunchItem); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, tenantID string, u *user.User) error {
	args := m.Called(ctx, tenantID, u)
	return args.Error(0)
}

func (m *UserRepository) GetUser(ctx context.Context, tenantID, id string) (*user.User, error) {
	args := m.Called(ctx, tenantID, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetUserByEmail(ctx context.Context, tenantID, email string) (*user.User, error) {
	args := m.Called(ctx, tenantID, email)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UpdateUser(ctx context.Context, tenantID string, u *user.User) error {
	args := m.Called(ctx, tenantID, u)
	return args.Error(0)
}

func (m *UserRepository) ListUsers(ctx context.Context, tenantID string) ([]user.User, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) CreateRole(ctx context.Context, tenantID string, r *user.Role) error {
	args := m.Called(ctx, tenantID, r)
	return args.Error(0)
}

func (m *UserRepository) GetRole(ctx context.Context, tenantID, id string) (*user.Role, error) {
	args := m.Called(ctx, tenantID, id)
	if r, ok := args.Get(0).(*user.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetRoleByName(ctx context.Context, tenantID, name string) (*user.Role, error) {
	args := m.Called(ctx, tenantID, name)
	if r, ok := args.Get(0).(*user.Role); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) UpdateRole(ctx context.Context, tenantID string, r *user.Role) error {
	args := m.Called(ctx, tenantID, r)
	return args.Error(0)
}

func (m *UserRepository) ListRoles(ctx context.Context, tenantID string) ([]user.Role, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]user.Role); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// NotificationRepository is a mock for notification.Repository.
type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Log(ctx context.Context, tenantID string, n *notification.Notification) error {
	args := m.Called(ctx, tenantID, n)
	return args.Error(0)
}

func (m *NotificationRepository) List(ctx context.Context, tenantID string, opts notification.ListOptions) ([]notification.Notification, error) {
	args := m.Called(ctx, tenantID, opts)
	if list, ok := args.Get(0).([]notification.Notification); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) MarkRead(ctx context.Context, tenantID string, id int64) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// SearchRepository is a mock for rfi.SearchRepository.
type SearchRepository struct {
	mock.Mock
}

func (m *SearchRepository) SearchRFIs(ctx context.Context, tenantID, projectID, query string, opts rfi.SearchOptions) ([]rfi.SearchResult, error) {
	args := m.Called(ctx, tenantID, projectID, query, opts)
	if list, ok := args.Get(0).([]rfi.SearchResult); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ReportDefinitionRepository is a mock for report.Repository.
type ReportDefinitionRepository struct {
	mock.Mock
}

func (m *ReportDefinitionRepository) Create(ctx context.Context, tenantID string, def *report.Definition) error {
	args := m.Called(ctx, tenantID, def)
	return args.Error(0)
}

func (m *ReportDefinitionRepository) Get(ctx context.Context, tenantID, id string) (*report.Definition, error) {
	args := m.Called(ctx, tenantID, id)
	if def, ok := args.Get(0).(*report.Definition); ok {
		return def, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReportDefinitionRepository) List(ctx context.Context, tenantID string) ([]report.Definition, error) {
	args := m.Called(ctx, tenantID)
	if list, ok := args.Get(0).([]report.Definition); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReportDefinitionRepository) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
