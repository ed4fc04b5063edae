package punchlist_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitehero/sitehero/internal/domain/punchlist"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/repository/mocks"
)

func TestPunchService_Create_NotifiesAssignee(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	itemsRepo := &mocks.PunchItemRepository{}
	projectsRepo := &mocks.ProjectRepository{}
	notificationsRepo := &mocks.NotificationRepository{}

	projectsRepo.On("NextNumber", ctx, tenantID, "proj1", "punch_item").Return(4, nil)
	itemsRepo.On("Create", ctx, tenantID, mock.Anything).Return(nil)
	notificationsRepo.On("Log", ctx, tenantID, mock.Anything).Return(nil)

	svc := punchlist.NewService(itemsRepo, projectsRepo, notificationsRepo, nil)
	item, err := svc.Create(ctx, tenantID, punchlist.CreateRequest{
		ProjectID:  "proj1",
		Title:      "Touch up paint in lobby",
		AssigneeID: "user1",
	})
	require.NoError(t, err)
	require.Equal(t, 4, item.Number)
	require.Equal(t, punchlist.StatusOpen, item.Status)
	notificationsRepo.AssertCalled(t, "Log", ctx, tenantID, mock.Anything)
}

func TestPunchService_Create_NoAssigneeNoNotification(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	itemsRepo := &mocks.PunchItemRepository{}
	projectsRepo := &mocks.ProjectRepository{}
	notificationsRepo := &mocks.NotificationRepository{}

	projectsRepo.On("NextNumber", ctx, tenantID, "proj1", "punch_item").Return(1, nil)
	itemsRepo.On("Create", ctx, tenantID, mock.Anything).Return(nil)

	svc := punchlist.NewService(itemsRepo, projectsRepo, notificationsRepo, nil)
	_, err := svc.Create(ctx, tenantID, punchlist.CreateRequest{ProjectID: "proj1", Title: "Title"})
	require.NoError(t, err)
	notificationsRepo.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything)
}

func TestPunchService_Transition(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	itemsRepo := &mocks.PunchItemRepository{}
	notificationsRepo := &mocks.NotificationRepository{}
	itemsRepo.On("Get", ctx, tenantID, "i1").Return(&punchlist.PunchItem{ID: "i1", Status: punchlist.StatusOpen}, nil)
	itemsRepo.On("Update", ctx, tenantID, mock.Anything).Return(nil)
	notificationsRepo.On("Log", ctx, tenantID, mock.Anything).Return(nil)

	svc := punchlist.NewService(itemsRepo, &mocks.ProjectRepository{}, notificationsRepo, nil)

	item, err := svc.Transition(ctx, tenantID, "i1", punchlist.StatusResolved)
	require.NoError(t, err)
	require.Equal(t, punchlist.StatusResolved, item.Status)
	notificationsRepo.AssertCalled(t, "Log", ctx, tenantID, mock.Anything)

	_, err = svc.Transition(ctx, tenantID, "i1", punchlist.StatusReadyForReview)
	require.ErrorIs(t, err, punchlist.ErrInvalidTransition)
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		from, to punchlist.Status
		ok       bool
	}{
		{punchlist.StatusOpen, punchlist.StatusInProgress, true},
		{punchlist.StatusOpen, punchlist.StatusResolved, true},
		{punchlist.StatusOpen, punchlist.StatusRejected, false},
		{punchlist.StatusInProgress, punchlist.StatusReadyForReview, true},
		{punchlist.StatusInProgress, punchlist.StatusOpen, true},
		{punchlist.StatusInProgress, punchlist.StatusResolved, false},
		{punchlist.StatusReadyForReview, punchlist.StatusResolved, true},
		{punchlist.StatusReadyForReview, punchlist.StatusRejected, true},
		{punchlist.StatusRejected, punchlist.StatusInProgress, true},
		{punchlist.StatusRejected, punchlist.StatusOpen, true},
		{punchlist.StatusRejected, punchlist.StatusResolved, false},
		{punchlist.StatusResolved, punchlist.StatusOpen, true},
		{punchlist.StatusResolved, punchlist.StatusInProgress, false},
	}
	for _, tc := range cases {
		err := punchlist.ValidateTransition(tc.from, tc.to)
		if tc.ok {
			require.NoError(t, err, "%s -> %s", tc.from, tc.to)
		} else {
			require.ErrorIs(t, err, punchlist.ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
		}
	}
}

func TestPunchService_View(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)

	items := []punchlist.PunchItem{
		{ID: "a", Number: 1, Title: "Late open", Status: punchlist.StatusOpen, DueDate: &yesterday},
		{ID: "b", Number: 2, Title: "Late resolved", Status: punchlist.StatusResolved, DueDate: &yesterday},
		{ID: "c", Number: 3, Title: "In progress", Status: punchlist.StatusInProgress},
	}

	itemsRepo := &mocks.PunchItemRepository{}
	projectsRepo := &mocks.ProjectRepository{}
	itemsRepo.On("ListByProject", ctx, tenantID, "proj1").Return(items, nil)
	projectsRepo.On("NumberingScheme", ctx, tenantID, "proj1", "punch_item").Return(rfi.NumberingScheme{Prefix: "PL"}, nil)

	svc := punchlist.NewService(itemsRepo, projectsRepo, nil, nil)
	views, stats, err := svc.View(ctx, tenantID, "proj1", now)
	require.NoError(t, err)
	require.Len(t, views, 3)

	require.Equal(t, "PL-001", views[0].DisplayNumber)
	require.True(t, views[0].DueDateInfo.IsOverdue)
	// resolved items are never overdue regardless of due date
	require.False(t, views[1].DueDateInfo.IsOverdue)

	require.Equal(t, punchlist.Statistics{Total: 3, Open: 2, Resolved: 1, Overdue: 1}, stats)
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := punchlist.ComputeStatistics(nil, time.Now())
	require.Equal(t, punchlist.Statistics{}, stats)
}
