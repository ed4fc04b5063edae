package rfi

import (
	"fmt"
	"time"
)

// Status represents the workflow status of an RFI
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusAnswered  Status = "answered"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusClosed    Status = "closed"
)

// ParseStatus validates a raw status string. Unknown values are a
// data-integrity violation and are rejected rather than coerced.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusSubmitted, StatusAnswered, StatusApproved, StatusRejected, StatusClosed:
		return Status(s), nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidStatus, s)
}

// Priority represents the urgency of an RFI
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// ParsePriority validates a raw priority string.
func ParsePriority(s string) (Priority, error) {
	switch Priority(s) {
	case PriorityLow, PriorityNormal, PriorityHigh:
		return Priority(s), nil
	}
	return "", fmt.Errorf("%w: priority %q", ErrInvalidPriority, s)
}

// effective treats an absent priority as normal.
func (p Priority) effective() Priority {
	if p == "" {
		return PriorityNormal
	}
	return p
}

// RFI represents a request-for-information item on a project
type RFI struct {
	ID              string     `json:"id"`
	TenantID        string     `json:"tenant_id"`
	ProjectID       string     `json:"project_id"`
	Number          int        `json:"number"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	ReferenceNumber string     `json:"reference_number,omitempty"`
	Status          Status     `json:"status"`
	Priority        Priority   `json:"priority"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ModifiedAt      time.Time  `json:"modified_at"`
}

// NumberingScheme describes how sequence numbers are rendered for display.
type NumberingScheme struct {
	Prefix string `json:"prefix"`
}

// SearchResult represents a full-text search hit with relevance
type SearchResult struct {
	RFI     RFI     `json:"rfi"`
	Rank    float64 `json:"rank"`
	Snippet string  `json:"snippet,omitempty"`
}
