package rfi

import "strings"

// ValidateCreateInput validates fields required to create an RFI.
func ValidateCreateInput(req CreateRequest) error {
	if strings.TrimSpace(req.ProjectID) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(req.Title) == "" {
		return ErrInvalidInput
	}
	if req.Priority != "" {
		if _, err := ParsePriority(string(req.Priority)); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTransition validates a requested status transition.
func ValidateTransition(from, to Status) error {
	valid := false
	switch from {
	case StatusDraft:
		valid = to == StatusSubmitted
	case StatusSubmitted:
		valid = to == StatusAnswered || to == StatusClosed
	case StatusAnswered:
		switch to {
		case StatusApproved, StatusRejected, StatusClosed:
			valid = true
		}
	case StatusApproved:
		valid = to == StatusClosed
	case StatusRejected:
		valid = to == StatusSubmitted || to == StatusClosed
	}

	if !valid {
		return ErrInvalidTransition
	}
	return nil
}
