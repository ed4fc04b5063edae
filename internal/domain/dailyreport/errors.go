package dailyreport

import "errors"

var (
	// ErrNotFound indicates the daily report doesn't exist.
	ErrNotFound = errors.New("daily report not found")
	// ErrDuplicateDate indicates a report already exists for the day.
	ErrDuplicateDate = errors.New("daily report already exists for date")
	// ErrInvalidInput indicates invalid daily report input.
	ErrInvalidInput = errors.New("invalid daily report input")
)
