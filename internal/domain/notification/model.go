package notification

import "time"

// Kind represents the type of notification event
type Kind string

const (
	KindRFICreated       Kind = "rfi_created"
	KindRFIStatusChanged Kind = "rfi_status_changed"
	KindRFIDueSoon       Kind = "rfi_due_soon"
	KindPunchAssigned    Kind = "punch_assigned"
	KindPunchResolved    Kind = "punch_resolved"
	KindReportSubmitted  Kind = "report_submitted"
)

// Notification represents an event in a user's notification feed. An
// empty UserID targets everyone on the project.
type Notification struct {
	ID        int64     `json:"id"`
	TenantID  string    `json:"tenant_id"`
	ProjectID string    `json:"project_id"`
	UserID    string    `json:"user_id,omitempty"`
	Kind      Kind      `json:"kind"`
	Summary   string    `json:"summary"`
	RefID     string    `json:"ref_id,omitempty"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
