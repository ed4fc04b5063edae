package punchlist

import (
	"fmt"
	"time"

	"github.com/sitehero/sitehero/internal/domain/rfi"
)

// Status represents the workflow status of a punch-list item
type Status string

const (
	StatusOpen           Status = "open"
	StatusInProgress     Status = "in_progress"
	StatusReadyForReview Status = "ready_for_review"
	StatusResolved       Status = "resolved"
	StatusRejected       Status = "rejected"
)

// ParseStatus validates a raw punch item status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOpen, StatusInProgress, StatusReadyForReview, StatusResolved, StatusRejected:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidStatus, s)
}

// PunchItem represents one punch-list deficiency on a project
type PunchItem struct {
	ID          string       `json:"id"`
	TenantID    string       `json:"tenant_id"`
	ProjectID   string       `json:"project_id"`
	Number      int          `json:"number"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Location    string       `json:"location,omitempty"`
	Trade       string       `json:"trade,omitempty"`
	Status      Status       `json:"status"`
	Priority    rfi.Priority `json:"priority"`
	AssigneeID  string       `json:"assignee_id,omitempty"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	ModifiedAt  time.Time    `json:"modified_at"`
}

// Statistics are aggregate counts over a project's punch items.
type Statistics struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Resolved int `json:"resolved"`
	Overdue  int `json:"overdue"`
}

// ViewItem is a punch item enriched with computed display facts.
type ViewItem struct {
	PunchItem     PunchItem       `json:"punch_item"`
	DisplayNumber string          `json:"display_number"`
	DueDateInfo   rfi.DueDateInfo `json:"due_date_info"`
}
