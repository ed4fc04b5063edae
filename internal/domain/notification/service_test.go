package notification_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/repository"
	"github.com/sitehero/sitehero/internal/repository/mocks"
)

func TestNotificationService_Notify_StampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	tenantID := "tenant1"

	repo := &mocks.NotificationRepository{}
	repo.On("Log", ctx, tenantID, mock.Anything).Return(nil)

	svc := notification.NewService(repo, nil)
	n := &notification.Notification{ProjectID: "p1", Kind: notification.KindRFICreated, Summary: "RFI created"}
	require.NoError(t, svc.Notify(ctx, tenantID, n))
	require.False(t, n.CreatedAt.IsZero())
}

func TestNotificationService_Notify_Nil(t *testing.T) {
	svc := notification.NewService(&mocks.NotificationRepository{}, nil)
	require.ErrorIs(t, svc.Notify(context.Background(), "tenant1", nil), notification.ErrInvalidInput)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.NotificationRepository{}
	repo.On("MarkRead", ctx, "tenant1", int64(99)).Return(repository.ErrNotFound)

	svc := notification.NewService(repo, nil)
	require.ErrorIs(t, svc.MarkRead(ctx, "tenant1", 99), notification.ErrNotFound)
}
