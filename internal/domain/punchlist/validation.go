package punchlist

// ValidateTransition validates a requested status transition.
func ValidateTransition(from, to Status) error {
	valid := false
	switch from {
	case StatusOpen:
		valid = to == StatusInProgress || to == StatusResolved
	case StatusInProgress:
		valid = to == StatusReadyForReview || to == StatusOpen
	case StatusReadyForReview:
		valid = to == StatusResolved || to == StatusRejected
	case StatusRejected:
		valid = to == StatusInProgress || to == StatusOpen
	case StatusResolved:
		// Reopening a resolved item starts the workflow over.
		valid = to == StatusOpen
	}

	if !valid {
		return ErrInvalidTransition
	}
	return nil
}
