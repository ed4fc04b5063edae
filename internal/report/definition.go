package report

import (
	"errors"
	"fmt"
	"time"
)

// Source identifies the data set a report draws from
type Source string

const (
	SourceRFIs         Source = "rfis"
	SourcePunchItems   Source = "punch_items"
	SourceDailyReports Source = "daily_reports"
)

// ParseSource validates a raw report source string.
func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceRFIs, SourcePunchItems, SourceDailyReports:
		return Source(s), nil
	}
	return "", fmt.Errorf("%w: source %q", ErrInvalidSource, s)
}

// Known column keys per source.
var sourceColumns = map[Source][]string{
	SourceRFIs:         {"number", "title", "status", "priority", "due", "reference", "created"},
	SourcePunchItems:   {"number", "title", "status", "priority", "location", "trade", "due"},
	SourceDailyReports: {"date", "weather", "workforce", "work_performed", "delays", "safety_incidents", "notes"},
}

// Definition describes a saved report: its source, the columns to
// include, and optional status/priority filters.
type Definition struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	Source    Source    `json:"source"`
	Columns   []string  `json:"columns"`
	Status    string    `json:"status,omitempty"`
	Priority  string    `json:"priority,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks a definition's source and column set.
func (d Definition) Validate() error {
	if d.Name == "" || d.ProjectID == "" {
		return ErrInvalidInput
	}
	if _, err := ParseSource(string(d.Source)); err != nil {
		return err
	}
	if len(d.Columns) == 0 {
		return ErrInvalidInput
	}
	known := sourceColumns[d.Source]
	for _, col := range d.Columns {
		if !contains(known, col) {
			return fmt.Errorf("%w: column %q for source %s", ErrInvalidColumn, col, d.Source)
		}
	}
	return nil
}

// Table is a built report ready for rendering.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

var (
	// ErrInvalidSource indicates a report source outside the closed set.
	ErrInvalidSource = errors.New("invalid report source")
	// ErrInvalidColumn indicates a column unknown to the report source.
	ErrInvalidColumn = errors.New("invalid report column")
	// ErrInvalidInput indicates invalid report definition input.
	ErrInvalidInput = errors.New("invalid report input")
	// ErrNotFound indicates the report definition doesn't exist.
	ErrNotFound = errors.New("report not found")
)

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
