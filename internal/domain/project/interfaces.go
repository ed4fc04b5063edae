package project

import "context"

// Repository provides persistence operations for projects and their
// workflow-type numbering schemes.
type Repository interface {
	Create(ctx context.Context, tenantID string, proj *Project) error
	Get(ctx context.Context, tenantID, id string) (*Project, error)
	Update(ctx context.Context, tenantID string, proj *Project) error
	List(ctx context.Context, tenantID string) ([]Summary, error)
	EnsureWorkflowType(ctx context.Context, tenantID, projectID string, wt WorkflowType) error
	GetWorkflowType(ctx context.Context, tenantID, projectID, key string) (*WorkflowType, error)
	NextNumber(ctx context.Context, tenantID, projectID, key string) (int, error)
}
