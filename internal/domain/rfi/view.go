package rfi

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StatusFilter selects RFIs by status. Besides the concrete statuses it
// accepts "all" and the synthetic "overdue" value.
type StatusFilter string

// PriorityFilter selects RFIs by priority, or "all".
type PriorityFilter string

const (
	StatusFilterAll     StatusFilter   = "all"
	StatusFilterOverdue StatusFilter   = "overdue"
	PriorityFilterAll   PriorityFilter = "all"
)

// ParseStatusFilter validates a raw status filter value.
func ParseStatusFilter(s string) (StatusFilter, error) {
	if s == "" || StatusFilter(s) == StatusFilterAll || StatusFilter(s) == StatusFilterOverdue {
		if s == "" {
			return StatusFilterAll, nil
		}
		return StatusFilter(s), nil
	}
	if _, err := ParseStatus(s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, s)
	}
	return StatusFilter(s), nil
}

// ParsePriorityFilter validates a raw priority filter value.
func ParsePriorityFilter(s string) (PriorityFilter, error) {
	if s == "" || PriorityFilter(s) == PriorityFilterAll {
		return PriorityFilterAll, nil
	}
	if _, err := ParsePriority(s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriorityFilter, s)
	}
	return PriorityFilter(s), nil
}

// FilterCriteria is the user-supplied filter state for the RFI list.
type FilterCriteria struct {
	SearchTerm string
	Status     StatusFilter
	Priority   PriorityFilter
}

// StyleClass labels a due-date status for presentation.
type StyleClass string

const (
	StyleNeutral  StyleClass = "neutral"
	StyleUrgent   StyleClass = "urgent"
	StyleWarning  StyleClass = "warning"
	StyleCritical StyleClass = "critical"
)

// DueDateInfo is the derived display state of an RFI's due date.
type DueDateInfo struct {
	Text       string     `json:"text"`
	StyleClass StyleClass `json:"style_class"`
	IsOverdue  bool       `json:"is_overdue"`
}

// ViewItem is an RFI enriched with computed display facts.
type ViewItem struct {
	RFI           RFI         `json:"rfi"`
	DisplayNumber string      `json:"display_number"`
	DueDateInfo   DueDateInfo `json:"due_date_info"`
}

// Statistics are aggregate counts over the full record set. The buckets
// test independent predicates; a record may land in more than one.
type Statistics struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Overdue  int `json:"overdue"`
	Answered int `json:"answered"`
}

// ViewModel is the complete display state for an RFI list: the filtered
// items plus statistics over the unfiltered set.
type ViewModel struct {
	Items []ViewItem `json:"items"`
	Stats Statistics `json:"stats"`
}

// ComputeDueDateInfo derives the display state for a due date. The
// current time is an explicit parameter so the result is deterministic;
// day differences are taken on calendar-day boundaries in now's location.
func ComputeDueDateInfo(due *time.Time, now time.Time) DueDateInfo {
	if due == nil {
		return DueDateInfo{Text: "No due date", StyleClass: StyleNeutral}
	}

	days := daysBetween(now, *due)
	switch {
	case days < 0:
		return DueDateInfo{
			Text:       fmt.Sprintf("%d %s overdue", -days, pluralDay(-days)),
			StyleClass: StyleCritical,
			IsOverdue:  true,
		}
	case days == 0:
		return DueDateInfo{Text: "Due today", StyleClass: StyleUrgent}
	case days <= 3:
		return DueDateInfo{
			Text:       fmt.Sprintf("Due in %d %s", days, pluralDay(days)),
			StyleClass: StyleWarning,
		}
	default:
		return DueDateInfo{Text: due.Format("Jan 2, 2006"), StyleClass: StyleNeutral}
	}
}

// FormatDisplayNumber renders a sequence number as prefix-NNN, zero-padded
// to three digits. Larger numbers keep their full digit count.
func FormatDisplayNumber(number int, prefix string) (string, error) {
	if number < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidNumber, number)
	}
	return fmt.Sprintf("%s-%03d", prefix, number), nil
}

// Filter returns the records matching all active criteria. The input
// order is preserved and the input slice is never mutated.
func Filter(records []RFI, criteria FilterCriteria, now time.Time) []RFI {
	matched := make([]RFI, 0, len(records))
	for _, r := range records {
		if matchesSearch(r, criteria.SearchTerm) &&
			matchesStatus(r, criteria.Status, now) &&
			matchesPriority(r, criteria.Priority) {
			matched = append(matched, r)
		}
	}
	return matched
}

// ComputeStatistics counts the aggregate buckets over the full record
// set. Statistics always reflect the unfiltered set; filters drive only
// the displayed list.
func ComputeStatistics(records []RFI, now time.Time) Statistics {
	stats := Statistics{Total: len(records)}
	for _, r := range records {
		switch r.Status {
		case StatusDraft, StatusSubmitted:
			stats.Open++
		case StatusAnswered, StatusApproved:
			stats.Answered++
		}
		if isOverdue(r, now) {
			stats.Overdue++
		}
	}
	return stats
}

// BuildViewModel produces the full display state for a record set. Every
// record's status and priority must be inside the closed enumerations;
// an invalid value fails the whole computation rather than corrupting
// the statistics.
func BuildViewModel(records []RFI, scheme NumberingScheme, criteria FilterCriteria, now time.Time) (ViewModel, error) {
	for _, r := range records {
		if _, err := ParseStatus(string(r.Status)); err != nil {
			return ViewModel{}, fmt.Errorf("record %s: %w", r.ID, err)
		}
		if r.Priority != "" {
			if _, err := ParsePriority(string(r.Priority)); err != nil {
				return ViewModel{}, fmt.Errorf("record %s: %w", r.ID, err)
			}
		}
	}

	filtered := Filter(records, criteria, now)
	items := make([]ViewItem, 0, len(filtered))
	for _, r := range filtered {
		item, err := NewViewItem(r, scheme, now)
		if err != nil {
			return ViewModel{}, err
		}
		items = append(items, item)
	}

	return ViewModel{
		Items: items,
		Stats: ComputeStatistics(records, now),
	}, nil
}

// NewViewItem derives the display facts for a single record. Closed
// records are never reported as overdue, regardless of due date.
func NewViewItem(r RFI, scheme NumberingScheme, now time.Time) (ViewItem, error) {
	display, err := FormatDisplayNumber(r.Number, scheme.Prefix)
	if err != nil {
		return ViewItem{}, fmt.Errorf("record %s: %w", r.ID, err)
	}

	info := ComputeDueDateInfo(r.DueDate, now)
	if r.Status == StatusClosed {
		info.IsOverdue = false
	}

	return ViewItem{RFI: r, DisplayNumber: display, DueDateInfo: info}, nil
}

func matchesSearch(r RFI, term string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(r.ReferenceNumber), term) ||
		strings.Contains(strconv.Itoa(r.Number), term)
}

func matchesStatus(r RFI, filter StatusFilter, now time.Time) bool {
	switch filter {
	case StatusFilterAll, "":
		return true
	case StatusFilterOverdue:
		return isOverdue(r, now)
	default:
		return r.Status == Status(filter)
	}
}

func matchesPriority(r RFI, filter PriorityFilter) bool {
	if filter == PriorityFilterAll || filter == "" {
		return true
	}
	return r.Priority.effective() == Priority(filter)
}

// isOverdue reports whether a record's due date is strictly before now's
// calendar day. Closed records are never overdue.
func isOverdue(r RFI, now time.Time) bool {
	if r.DueDate == nil || r.Status == StatusClosed {
		return false
	}
	return daysBetween(now, *r.DueDate) < 0
}

// daysBetween returns the whole calendar days from now's day to t's day,
// negative when t is in the past.
func daysBetween(now, t time.Time) int {
	from := startOfDay(now)
	to := startOfDay(t.In(now.Location()))
	// Round absorbs DST transitions inside the interval.
	return int(to.Sub(from).Round(24*time.Hour) / (24 * time.Hour))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func pluralDay(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
