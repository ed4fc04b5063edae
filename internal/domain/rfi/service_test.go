package rfi_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/repository"
	"github.com/sitehero/sitehero/internal/repository/mocks"
)

func TestRFIService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	rfisRepo := &mocks.RFIRepository{}
	projectsRepo := &mocks.ProjectRepository{}
	notificationsRepo := &mocks.NotificationRepository{}

	projectsRepo.On("NextNumber", ctx, tenantID, "proj1", "rfi").Return(7, nil)
	rfisRepo.On("Create", ctx, tenantID, mock.Anything).Return(nil)
	notificationsRepo.On("Log", ctx, tenantID, mock.Anything).Return(nil)

	svc := rfi.NewService(rfisRepo, projectsRepo, notificationsRepo, nil, nil)
	r, err := svc.Create(ctx, tenantID, rfi.CreateRequest{
		ProjectID: "proj1",
		Title:     "Clarify anchor detail",
		Priority:  rfi.PriorityHigh,
	})
	require.NoError(t, err)
	require.Equal(t, 7, r.Number)
	require.Equal(t, rfi.StatusDraft, r.Status)
	require.NotEmpty(t, r.ID)
	notificationsRepo.AssertCalled(t, "Log", ctx, tenantID, mock.Anything)
}

func TestRFIService_Create_Invalid(t *testing.T) {
	ctx := context.Background()

	svc := rfi.NewService(&mocks.RFIRepository{}, &mocks.ProjectRepository{}, nil, nil, nil)

	_, err := svc.Create(ctx, "tenant1", rfi.CreateRequest{Title: "no project"})
	require.ErrorIs(t, err, rfi.ErrInvalidInput)

	_, err = svc.Create(ctx, "tenant1", rfi.CreateRequest{ProjectID: "proj1"})
	require.ErrorIs(t, err, rfi.ErrInvalidInput)

	_, err = svc.Create(ctx, "tenant1", rfi.CreateRequest{
		ProjectID: "proj1",
		Title:     "bad priority",
		Priority:  "critical",
	})
	require.ErrorIs(t, err, rfi.ErrInvalidPriority)
}

func TestRFIService_Create_NotificationFailureIgnored(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	rfisRepo := &mocks.RFIRepository{}
	projectsRepo := &mocks.ProjectRepository{}
	notificationsRepo := &mocks.NotificationRepository{}

	projectsRepo.On("NextNumber", ctx, tenantID, "proj1", "rfi").Return(1, nil)
	rfisRepo.On("Create", ctx, tenantID, mock.Anything).Return(nil)
	notificationsRepo.On("Log", ctx, tenantID, mock.Anything).Return(repository.ErrInvalidInput)

	svc := rfi.NewService(rfisRepo, projectsRepo, notificationsRepo, nil, nil)
	_, err := svc.Create(ctx, tenantID, rfi.CreateRequest{ProjectID: "proj1", Title: "Title"})
	require.NoError(t, err)
}

func TestRFIService_Get_NotFound(t *testing.T) {
	ctx := context.Background()

	rfisRepo := &mocks.RFIRepository{}
	rfisRepo.On("Get", ctx, "tenant1", "missing").Return(nil, repository.ErrNotFound)

	svc := rfi.NewService(rfisRepo, &mocks.ProjectRepository{}, nil, nil, nil)
	_, err := svc.Get(ctx, "tenant1", "missing")
	require.ErrorIs(t, err, rfi.ErrNotFound)
}

func TestRFIService_Update(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	existing := &rfi.RFI{ID: "r1", ProjectID: "proj1", Number: 1, Title: "Old", Status: rfi.StatusDraft, Priority: rfi.PriorityNormal}

	rfisRepo := &mocks.RFIRepository{}
	rfisRepo.On("Get", ctx, tenantID, "r1").Return(existing, nil)
	rfisRepo.On("Update", ctx, tenantID, mock.Anything).Return(nil)

	title := "New title"
	svc := rfi.NewService(rfisRepo, &mocks.ProjectRepository{}, nil, nil, nil)
	r, err := svc.Update(ctx, tenantID, rfi.UpdateRequest{ID: "r1", Title: &title})
	require.NoError(t, err)
	require.Equal(t, "New title", r.Title)
}

func TestRFIService_Update_ClearDue(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	due := time.Now()
	existing := &rfi.RFI{ID: "r1", Number: 1, Title: "Title", Status: rfi.StatusDraft, DueDate: &due}

	rfisRepo := &mocks.RFIRepository{}
	rfisRepo.On("Get", ctx, tenantID, "r1").Return(existing, nil)
	rfisRepo.On("Update", ctx, tenantID, mock.Anything).Return(nil)

	svc := rfi.NewService(rfisRepo, &mocks.ProjectRepository{}, nil, nil, nil)
	r, err := svc.Update(ctx, tenantID, rfi.UpdateRequest{ID: "r1", ClearDue: true})
	require.NoError(t, err)
	require.Nil(t, r.DueDate)
}

func TestRFIService_Transition(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	existing := &rfi.RFI{ID: "r1", ProjectID: "proj1", Number: 1, Title: "Title", Status: rfi.StatusDraft}

	rfisRepo := &mocks.RFIRepository{}
	notificationsRepo := &mocks.NotificationRepository{}
	rfisRepo.On("Get", ctx, tenantID, "r1").Return(existing, nil)
	rfisRepo.On("Update", ctx, tenantID, mock.Anything).Return(nil)
	notificationsRepo.On("Log", ctx, tenantID, mock.Anything).Return(nil)

	svc := rfi.NewService(rfisRepo, &mocks.ProjectRepository{}, notificationsRepo, nil, nil)
	r, err := svc.Transition(ctx, tenantID, "r1", rfi.StatusSubmitted)
	require.NoError(t, err)
	require.Equal(t, rfi.StatusSubmitted, r.Status)
}

func TestRFIService_Transition_Invalid(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	existing := &rfi.RFI{ID: "r1", Number: 1, Title: "Title", Status: rfi.StatusDraft}

	rfisRepo := &mocks.RFIRepository{}
	rfisRepo.On("Get", ctx, tenantID, "r1").Return(existing, nil)

	svc := rfi.NewService(rfisRepo, &mocks.ProjectRepository{}, nil, nil, nil)

	// draft can only move to submitted
	_, err := svc.Transition(ctx, tenantID, "r1", rfi.StatusApproved)
	require.ErrorIs(t, err, rfi.ErrInvalidTransition)

	_, err = svc.Transition(ctx, tenantID, "r1", "bogus")
	require.ErrorIs(t, err, rfi.ErrInvalidStatus)
}

func TestRFIService_Delete_OnlyDrafts(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	draft := &rfi.RFI{ID: "r1", Number: 1, Status: rfi.StatusDraft}
	submitted := &rfi.RFI{ID: "r2", Number: 2, Status: rfi.StatusSubmitted}

	rfisRepo := &mocks.RFIRepository{}
	rfisRepo.On("Get", ctx, tenantID, "r1").Return(draft, nil)
	rfisRepo.On("Get", ctx, tenantID, "r2").Return(submitted, nil)
	rfisRepo.On("Delete", ctx, tenantID, "r1").Return(nil)

	svc := rfi.NewService(rfisRepo, &mocks.ProjectRepository{}, nil, nil, nil)

	require.NoError(t, svc.Delete(ctx, tenantID, "r1"))
	require.ErrorIs(t, svc.Delete(ctx, tenantID, "r2"), rfi.ErrInvalidTransition)
}

func TestRFIService_View(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	records := []rfi.RFI{
		{ID: "a", Number: 1, Title: "One", Status: rfi.StatusSubmitted, Priority: rfi.PriorityHigh},
		{ID: "b", Number: 2, Title: "Two", Status: rfi.StatusClosed},
	}

	rfisRepo := &mocks.RFIRepository{}
	projectsRepo := &mocks.ProjectRepository{}
	rfisRepo.On("ListByProject", ctx, tenantID, "proj1").Return(records, nil)
	projectsRepo.On("NumberingScheme", ctx, tenantID, "proj1", "rfi").Return(rfi.NumberingScheme{Prefix: "RFI"}, nil)

	svc := rfi.NewService(rfisRepo, projectsRepo, nil, nil, nil)
	vm, err := svc.View(ctx, tenantID, "proj1", rfi.FilterCriteria{}, now)
	require.NoError(t, err)
	require.Len(t, vm.Items, 2)
	require.Equal(t, "RFI-001", vm.Items[0].DisplayNumber)
	require.Equal(t, 2, vm.Stats.Total)
}

func TestRFIService_NotifyDueSoon(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	today := time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC)
	inTwoDays := now.AddDate(0, 0, 2)
	lastWeek := now.AddDate(0, 0, -7)
	nextMonth := now.AddDate(0, 1, 0)

	records := []rfi.RFI{
		{ID: "a", ProjectID: "proj1", Number: 1, Title: "Due today", Status: rfi.StatusSubmitted, DueDate: &today},
		{ID: "b", ProjectID: "proj1", Number: 2, Title: "Due soon", Status: rfi.StatusDraft, DueDate: &inTwoDays},
		{ID: "c", ProjectID: "proj1", Number: 3, Title: "Already overdue", Status: rfi.StatusSubmitted, DueDate: &lastWeek},
		{ID: "d", ProjectID: "proj1", Number: 4, Title: "Far out", Status: rfi.StatusSubmitted, DueDate: &nextMonth},
		{ID: "e", ProjectID: "proj1", Number: 5, Title: "Closed", Status: rfi.StatusClosed, DueDate: &today},
		{ID: "f", ProjectID: "proj1", Number: 6, Title: "No due date", Status: rfi.StatusSubmitted},
	}

	rfisRepo := &mocks.RFIRepository{}
	notificationsRepo := &mocks.NotificationRepository{}
	rfisRepo.On("ListByProject", ctx, tenantID, "proj1").Return(records, nil)
	notificationsRepo.On("Log", ctx, tenantID, mock.Anything).Return(nil)

	svc := rfi.NewService(rfisRepo, &mocks.ProjectRepository{}, notificationsRepo, nil, nil)
	count, err := svc.NotifyDueSoon(ctx, tenantID, "proj1", now)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	notificationsRepo.AssertNumberOfCalls(t, "Log", 2)
}

func TestRFIService_Search(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	results := []rfi.SearchResult{{RFI: rfi.RFI{ID: "a"}, Rank: -1.5}}

	searchRepo := &mocks.SearchRepository{}
	searchRepo.On("SearchRFIs", ctx, tenantID, "proj1", "anchor", rfi.SearchOptions{Limit: 10}).Return(results, nil)

	svc := rfi.NewService(&mocks.RFIRepository{}, &mocks.ProjectRepository{}, nil, searchRepo, nil)
	got, err := svc.Search(ctx, tenantID, "proj1", "anchor", rfi.SearchOptions{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, results, got)
}
