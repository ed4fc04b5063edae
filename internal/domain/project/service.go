package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitehero/sitehero/internal/repository"
)

// Default numbering prefixes for the built-in workflow types.
var defaultWorkflowTypes = []WorkflowType{
	{Key: WorkflowRFI, Prefix: "RFI", NextNumber: 1},
	{Key: WorkflowPunchItem, Prefix: "PL", NextNumber: 1},
	{Key: WorkflowSubmittal, Prefix: "SUB", NextNumber: 1},
}

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ID          string
	Name        string
	Description string
	Address     string
}

// Create creates a new project with the built-in workflow types seeded.
func (s *Service) Create(ctx context.Context, tenantID string, req CreateRequest) (*Project, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrInvalidInput
	}

	id := req.ID
	if strings.TrimSpace(id) == "" {
		id = uuid.NewString()
	}

	proj := &Project{
		ID:          id,
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Status:      StatusActive,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, tenantID, proj); err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	for _, wt := range defaultWorkflowTypes {
		if err := s.repo.EnsureWorkflowType(ctx, tenantID, proj.ID, wt); err != nil {
			return nil, fmt.Errorf("seeding workflow type %s: %w", wt.Key, err)
		}
	}

	return proj, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, tenantID, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns project summaries.
func (s *Service) List(ctx context.Context, tenantID string) ([]Summary, error) {
	return s.repo.List(ctx, tenantID)
}

// SetStatus moves a project to a new lifecycle stage.
func (s *Service) SetStatus(ctx context.Context, tenantID, id string, status Status) (*Project, error) {
	if _, err := ParseStatus(string(status)); err != nil {
		return nil, err
	}

	proj, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	proj.Status = status
	if err := s.repo.Update(ctx, tenantID, proj); err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}
	return proj, nil
}

// EnsureWorkflowType registers a workflow type on a project if missing.
func (s *Service) EnsureWorkflowType(ctx context.Context, tenantID, projectID string, wt WorkflowType) error {
	if strings.TrimSpace(wt.Key) == "" || strings.TrimSpace(wt.Prefix) == "" {
		return ErrInvalidInput
	}
	if wt.NextNumber < 1 {
		wt.NextNumber = 1
	}
	return s.repo.EnsureWorkflowType(ctx, tenantID, projectID, wt)
}
