package punchlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/domain/project"
	"github.com/sitehero/sitehero/internal/domain/rfi"
	"github.com/sitehero/sitehero/internal/repository"
)

// Service handles punch-list business logic.
type Service struct {
	items         Repository
	projects      ProjectRepository
	notifications NotificationRepository
	logger        *slog.Logger
}

// NewService creates a new punch-list service.
func NewService(items Repository, projects ProjectRepository, notifications NotificationRepository, logger *slog.Logger) *Service {
	return &Service{items: items, projects: projects, notifications: notifications, logger: logger}
}

// CreateRequest describes a punch item creation request.
type CreateRequest struct {
	ProjectID   string
	Title       string
	Description string
	Location    string
	Trade       string
	Priority    rfi.Priority
	AssigneeID  string
	DueDate     *time.Time
}

// UpdateRequest describes a punch item update. Nil fields are unchanged.
type UpdateRequest struct {
	ID          string
	Title       *string
	Description *string
	Location    *string
	Trade       *string
	Priority    *rfi.Priority
	AssigneeID  *string
	DueDate     *time.Time
	ClearDue    bool
}

// Create creates a new punch item with a sequence number from the
// project's punch-list numbering scheme.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*PunchItem, error) {
	if strings.TrimSpace(req.ProjectID) == "" || strings.TrimSpace(req.Title) == "" {
		return nil, ErrInvalidInput
	}
	if req.Priority != "" {
		if _, err := rfi.ParsePriority(string(req.Priority)); err != nil {
			return nil, err
		}
	}

	number, err := s.projects.NextNumber(ctx, tenantID, req.ProjectID, project.WorkflowPunchItem)
	if err != nil {
		return nil, fmt.Errorf("allocating punch item number: %w", err)
	}

	now := time.Now()
	item := &PunchItem{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		ProjectID:   req.ProjectID,
		Number:      number,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		Trade:       req.Trade,
		Status:      StatusOpen,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		ModifiedAt:  now,
	}

	if err := s.items.Create(ctx, tenantID, item); err != nil {
		return nil, fmt.Errorf("creating punch item: %w", err)
	}

	if s.notifications != nil && item.AssigneeID != "" {
		_ = s.notifications.Log(ctx, tenantID, &notification.Notification{
			ProjectID: item.ProjectID,
			UserID:    item.AssigneeID,
			Kind:      notification.KindPunchAssigned,
			Summary:   fmt.Sprintf("punch item assigned: %s", item.Title),
			RefID:     item.ID,
			CreatedAt: now,
		})
	}

	return item, nil
}

// Get returns a punch item by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*PunchItem, error) {
	item, err := s.items.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting punch item: %w", err)
	}
	return item, nil
}

// Update modifies a punch item.
func (s *Service) Update(ctx context.Context, tenantID string, req UpdateRequest) (*PunchItem, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	item, err := s.Get(ctx, tenantID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrInvalidInput
		}
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Trade != nil {
		item.Trade = *req.Trade
	}
	if req.Priority != nil {
		if _, err := rfi.ParsePriority(string(*req.Priority)); err != nil {
			return nil, err
		}
		item.Priority = *req.Priority
	}
	if req.AssigneeID != nil {
		item.AssigneeID = *req.AssigneeID
	}
	if req.ClearDue {
		item.DueDate = nil
	} else if req.DueDate != nil {
		item.DueDate = req.DueDate
	}
	item.ModifiedAt = time.Now()

	if err := s.items.Update(ctx, tenantID, item); err != nil {
		return nil, fmt.Errorf("updating punch item: %w", err)
	}
	return item, nil
}

// Transition updates a punch item status with validation.
func (s *Service) Transition(ctx context.Context, tenantID, id string, to Status) (*PunchItem, error) {
	if _, err := ParseStatus(string(to)); err != nil {
		return nil, err
	}

	item, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(item.Status, to); err != nil {
		return nil, err
	}

	item.Status = to
	item.ModifiedAt = time.Now()
	if err := s.items.Update(ctx, tenantID, item); err != nil {
		return nil, fmt.Errorf("transitioning punch item: %w", err)
	}

	if s.notifications != nil && to == StatusResolved {
		_ = s.notifications.Log(ctx, tenantID, &notification.Notification{
			ProjectID: item.ProjectID,
			Kind:      notification.KindPunchResolved,
			Summary:   fmt.Sprintf("punch item resolved: %s", item.Title),
			RefID:     item.ID,
			CreatedAt: item.ModifiedAt,
		})
	}

	return item, nil
}

// View loads a project's punch items and derives display facts and
// statistics. The current time is threaded explicitly.
func (s *Service) View(ctx context.Context, tenantID, projectID string, now time.Time) ([]ViewItem, Statistics, error) {
	items, err := s.items.ListByProject(ctx, tenantID, projectID)
	if err != nil {
		return nil, Statistics{}, fmt.Errorf("listing punch items: %w", err)
	}

	scheme, err := s.projects.NumberingScheme(ctx, tenantID, projectID, project.WorkflowPunchItem)
	if err != nil {
		return nil, Statistics{}, fmt.Errorf("loading numbering scheme: %w", err)
	}

	views := make([]ViewItem, 0, len(items))
	for _, item := range items {
		display, err := rfi.FormatDisplayNumber(item.Number, scheme.Prefix)
		if err != nil {
			return nil, Statistics{}, fmt.Errorf("punch item %s: %w", item.ID, err)
		}
		info := rfi.ComputeDueDateInfo(item.DueDate, now)
		if terminal(item.Status) {
			info.IsOverdue = false
		}
		views = append(views, ViewItem{PunchItem: item, DisplayNumber: display, DueDateInfo: info})
	}

	return views, ComputeStatistics(items, now), nil
}

// ComputeStatistics counts the aggregate buckets over the full item set.
func ComputeStatistics(items []PunchItem, now time.Time) Statistics {
	stats := Statistics{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case StatusOpen, StatusInProgress, StatusReadyForReview:
			stats.Open++
		case StatusResolved:
			stats.Resolved++
		}
		if !terminal(item.Status) && item.DueDate != nil && rfi.ComputeDueDateInfo(item.DueDate, now).IsOverdue {
			stats.Overdue++
		}
	}
	return stats
}

// terminal reports whether a status ends the item's workflow; terminal
// items are never overdue.
func terminal(s Status) bool {
	return s == StatusResolved || s == StatusRejected
}
