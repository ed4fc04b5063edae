package dailyreport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitehero/sitehero/internal/domain/notification"
	"github.com/sitehero/sitehero/internal/repository"
)

// Service handles daily report operations.
type Service struct {
	repo          Repository
	notifications NotificationRepository
	logger        *slog.Logger
}

// NewService creates a new daily report service.
func NewService(repo Repository, notifications NotificationRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, notifications: notifications, logger: logger}
}

// CreateRequest describes a daily report creation request.
type CreateRequest struct {
	ProjectID       string
	ReportDate      time.Time
	Weather         string
	TemperatureC    *float64
	WorkforceCount  int
	WorkPerformed   string
	Delays          string
	SafetyIncidents string
	Notes           string
	CreatedBy       string
}

// UpdateRequest describes a daily report update. Nil fields are unchanged.
type UpdateRequest struct {
	ID              string
	Weather         *string
	TemperatureC    *float64
	WorkforceCount  *int
	WorkPerformed   *string
	Delays          *string
	SafetyIncidents *string
	Notes           *string
}

// Create records a new daily report. Only one report may exist per
// project per calendar day.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*DailyReport, error) {
	if strings.TrimSpace(req.ProjectID) == "" || req.ReportDate.IsZero() {
		return nil, ErrInvalidInput
	}
	if strings.TrimSpace(req.WorkPerformed) == "" {
		return nil, ErrInvalidInput
	}
	if req.WorkforceCount < 0 {
		return nil, ErrInvalidInput
	}

	now := time.Now()
	rep := &DailyReport{
		ID:              uuid.NewString(),
		TenantID:        tenantID,
		ProjectID:       req.ProjectID,
		ReportDate:      truncateToDay(req.ReportDate),
		Weather:         req.Weather,
		TemperatureC:    req.TemperatureC,
		WorkforceCount:  req.WorkforceCount,
		WorkPerformed:   req.WorkPerformed,
		Delays:          req.Delays,
		SafetyIncidents: req.SafetyIncidents,
		Notes:           req.Notes,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       now,
		ModifiedAt:      now,
	}

	if err := s.repo.Create(ctx, tenantID, rep); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("creating daily report: %w", err)
	}

	if s.notifications != nil {
		_ = s.notifications.Log(ctx, tenantID, &notification.Notification{
			ProjectID: rep.ProjectID,
			Kind:      notification.KindReportSubmitted,
			Summary:   fmt.Sprintf("daily report submitted for %s", rep.ReportDate.Format("2006-01-02")),
			RefID:     rep.ID,
			CreatedAt: now,
		})
	}

	return rep, nil
}

// Get returns a daily report by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*DailyReport, error) {
	rep, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting daily report: %w", err)
	}
	return rep, nil
}

// Update modifies a daily report. The report date is immutable.
func (s *Service) Update(ctx context.Context, tenantID string, req UpdateRequest) (*DailyReport, error) {
	if req.ID == "" {
		return nil, ErrInvalidInput
	}

	rep, err := s.Get(ctx, tenantID, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Weather != nil {
		rep.Weather = *req.Weather
	}
	if req.TemperatureC != nil {
		rep.TemperatureC = req.TemperatureC
	}
	if req.WorkforceCount != nil {
		if *req.WorkforceCount < 0 {
			return nil, ErrInvalidInput
		}
		rep.WorkforceCount = *req.WorkforceCount
	}
	if req.WorkPerformed != nil {
		if strings.TrimSpace(*req.WorkPerformed) == "" {
			return nil, ErrInvalidInput
		}
		rep.WorkPerformed = *req.WorkPerformed
	}
	if req.Delays != nil {
		rep.Delays = *req.Delays
	}
	if req.SafetyIncidents != nil {
		rep.SafetyIncidents = *req.SafetyIncidents
	}
	if req.Notes != nil {
		rep.Notes = *req.Notes
	}
	rep.ModifiedAt = time.Now()

	if err := s.repo.Update(ctx, tenantID, rep); err != nil {
		return nil, fmt.Errorf("updating daily report: %w", err)
	}
	return rep, nil
}

// Delete removes a daily report.
func (s *Service) Delete(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Delete(ctx, tenantID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("deleting daily report: %w", err)
	}
	return nil
}

// ListByRange returns a project's reports between from and to inclusive.
func (s *Service) ListByRange(ctx context.Context, tenantID, projectID string, from, to time.Time) ([]DailyReport, error) {
	if projectID == "" || from.After(to) {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByRange(ctx, tenantID, projectID, truncateToDay(from), truncateToDay(to))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
