package rfi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/domain/project"
	"github.com/sitehero/sitehero/internal/repository"
)

// Service handles RFI business logic.
type Service struct {
	rfis          Repository
	projects      ProjectRepository
	notifications NotificationRepository
	search        SearchRepository
	logger        *slog.Logger
}

// NewService creates a new RFI service.
func NewService(
	rfis Repository,
	projects ProjectRepository,
	notifications NotificationRepository,
	search SearchRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		rfis:          rfis,
		projects:      projects,
		notifications: notifications,
		search:        search,
		logger:        logger,
	}
}

// CreateRequest describes an RFI creation request.
type CreateRequest struct {
	ProjectID       string
	Title           string
	Description     string
	ReferenceNumber string
	Priority        Priority
	DueDate         *time.Time
}

// UpdateRequest describes an RFI update. Nil fields are unchanged.
type UpdateRequest struct {
	ID              string
	Title           *string
	Description     *string
	ReferenceNumber *string
	Priority        *Priority
	DueDate         *time.Time
	ClearDue        bool
}

// Create creates a new RFI in draft status with the next sequence
// number from the project's numbering scheme.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*RFI, error) {
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	number, err := s.projects.NextNumber(ctx, tenantID, req.ProjectID, project.WorkflowRFI)
	if err != nil {
		return nil, fmt.Errorf("allocating rfi number: %w", err)
	}

	now := time.Now()
	r := &RFI{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		ProjectID:       req.ProjectID,
		Number:          number,
		Title:           req.Title,
		Description:     req.Description,
		ReferenceNumber: req.ReferenceNumber,
		Status:          StatusDraft,
		Priority:        req.Priority,
		DueDate:         req.DueDate,
		CreatedAt:       now,
		ModifiedAt:      now,
	}

	if err := s.rfis.Create(ctx, tenantID, r); err != nil {
		return nil, fmt.Errorf("creating rfi: %w", err)
	}

	if s.notifications != nil {
		_ = s.notifications.Log(ctx, tenantID, &notification.Notification{
			ProjectID: r.ProjectID,
			Kind:      notification.KindRFICreated,
			Summary:   fmt.Sprintf("RFI created: %s", r.Title),
			RefID:     r.ID,
			CreatedAt: now,
		})
	}

	return r, nil
}

// Get returns an RFI by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*RFI, error) {
	r, err := s.rfis.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting rfi: %w", err)
	}
	return r, nil
}

// Update modifies an RFI's editable fields. Status changes go through
// Transition; the sequence number is immutable.
func (s *Service) Update(ctx context.Context, tenantID string, req UpdateRequest) (*RFI, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	r, err := s.Get(ctx, tenantID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, ErrInvalidInput
		}
		r.Title = *req.Title
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.ReferenceNumber != nil {
		r.ReferenceNumber = *req.ReferenceNumber
	}
	if req.Priority != nil {
		if _, err := ParsePriority(string(*req.Priority)); err != nil {
			return nil, err
		}
		r.Priority = *req.Priority
	}
	if req.ClearDue {
		r.DueDate = nil
	} else if req.DueDate != nil {
		r.DueDate = req.DueDate
	}
	r.ModifiedAt = time.Now()

	if err := s.rfis.Update(ctx, tenantID, r); err != nil {
		return nil, fmt.Errorf("updating rfi: %w", err)
	}
	return r, nil
}

// Transition moves an RFI to a new status with workflow validation.
func (s *Service) Transition(ctx context.Context, tenantID, id string, to Status) (*RFI, error) {
	if _, err := ParseStatus(string(to)); err != nil {
		return nil, err
	}

	r, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(r.Status, to); err != nil {
		return nil, err
	}

	from := r.Status
	r.Status = to
	r.ModifiedAt = time.Now()
	if err := s.rfis.Update(ctx, tenantID, r); err != nil {
		return nil, fmt.Errorf("transitioning rfi: %w", err)
	}

	if s.notifications != nil {
		_ = s.notifications.Log(ctx, tenantID, &notification.Notification{
			ProjectID: r.ProjectID,
			Kind:      notification.KindRFIStatusChanged,
			Summary:   fmt.Sprintf("RFI %s: %s -> %s", r.Title, from, to),
			RefID:     r.ID,
			CreatedAt: r.ModifiedAt,
		})
	}

	return r, nil
}

// Delete removes a draft RFI. Submitted and later RFIs are part of the
// project record and cannot be deleted.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	r, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if r.Status != StatusDraft {
		return ErrInvalidTransition
	}
	if err := s.rfis.Delete(ctx, tenantID, id); err != nil {
		return fmt.Errorf("deleting rfi: %w", err)
	}
	return nil
}

// List returns a project's RFIs in creation order.
func (s *Service) List(ctx context.Context, tenantID, projectID string) ([]RFI, error) {
	return s.rfis.ListByProject(ctx, tenantID, projectID)
}

// View loads a project's RFIs and runs the view-model engine over them
// with the given filter criteria.
func (s *Service) View(ctx context.Context, tenantID, projectID string, criteria FilterCriteria, now time.Time) (ViewModel, error) {
	records, err := s.rfis.ListByProject(ctx, tenantID, projectID)
	if err != nil {
		return ViewModel{}, fmt.Errorf("listing rfis: %w", err)
	}

	scheme, err := s.projects.NumberingScheme(ctx, tenantID, projectID, project.WorkflowRFI)
	if err != nil {
		return ViewModel{}, fmt.Errorf("loading numbering scheme: %w", err)
	}

	return BuildViewModel(records, scheme, criteria, now)
}

// NotifyDueSoon logs a due-soon notification for every open RFI in the
// project due within the next three calendar days. Returns the number
// of notifications logged. Intended to run from a daily sweep.
func (s *Service) NotifyDueSoon(ctx context.Context, tenantID, projectID string, now time.Time) (int, error) {
	if s.notifications == nil {
		return 0, nil
	}

	records, err := s.rfis.ListByProject(ctx, tenantID, projectID)
	if err != nil {
		return 0, fmt.Errorf("listing rfis: %w", err)
	}

	count := 0
	for _, r := range records {
		if r.Status == StatusClosed || r.DueDate == nil {
			continue
		}
		info := ComputeDueDateInfo(r.DueDate, now)
		if info.StyleClass != StyleUrgent && info.StyleClass != StyleWarning {
			continue
		}
		err := s.notifications.Log(ctx, tenantID, &notification.Notification{
			ProjectID: r.ProjectID,
			Kind:      notification.KindRFIDueSoon,
			Summary:   fmt.Sprintf("RFI %s: %s", r.Title, info.Text),
			RefID:     r.ID,
			CreatedAt: now,
		})
		if err != nil {
			return count, fmt.Errorf("logging due-soon notification: %w", err)
		}
		count++
	}
	return count, nil
}

// Search runs full-text search over a project's RFIs.
func (s *Service) Search(ctx context.Context, tenantID, projectID, query string, opts SearchOptions) ([]SearchResult, error) {
	if s.search == nil {
		return nil, fmt.Errorf("search repository not configured")
	}
	return s.search.SearchRFIs(ctx, tenantID, projectID, query, opts)
}
