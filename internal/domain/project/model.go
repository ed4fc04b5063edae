package project

import (
	"fmt"
	"time"
)

// Status represents the lifecycle stage of a project
type Status string

const (
	StatusActive    Status = "active"
	StatusOnHold    Status = "on_hold"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// ParseStatus validates a raw project status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusOnHold, StatusCompleted, StatusArchived:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidStatus, s)
}

// Project represents a construction project containing trackable items
type Project struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// Summary is a lightweight representation for listing
type Summary struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address,omitempty"`
	Status         Status    `json:"status"`
	RFICount       int       `json:"rfi_count"`
	OpenRFIs       int       `json:"open_rfis"`
	OpenPunchItems int       `json:"open_punch_items"`
	CreatedAt      time.Time `json:"created_at"`
}

// Workflow type keys for the trackable item categories sharing a
// numbering scheme.
const (
	WorkflowRFI       = "rfi"
	WorkflowPunchItem = "punch_item"
	WorkflowSubmittal = "submittal"
)

// WorkflowType describes one trackable item category on a project: its
// display prefix and the next sequence number to assign.
type WorkflowType struct {
	Key        string `json:"key"`
	Prefix     string `json:"prefix"`
	NextNumber int    `json:"next_number"`
}
