package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sitehero/sitehero/internal/repository"
)

// Service handles notification feed operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new notification service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Notify records a notification with the current timestamp if missing.
func (s *Service) Notify(ctx context.Context, tenantID string, n *Notification) error {
	if n == nil {
		return ErrInvalidInput
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if err := s.repo.Log(ctx, tenantID, n); err != nil {
		return fmt.Errorf("logging notification: %w", err)
	}
	return nil
}

// List returns notifications matching the options.
func (s *Service) List(ctx context.Context, tenantID string, opts ListOptions) ([]Notification, error) {
	return s.repo.List(ctx, tenantID, opts)
}

// MarkRead marks a notification as read.
func (s *Service) MarkRead(ctx context.Context, tenantID string, id int64) error {
	if err := s.repo.MarkRead(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("marking notification read: %w", err)
	}
	return nil
}
