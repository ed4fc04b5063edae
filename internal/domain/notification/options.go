package notification

// ListOptions provides filtering options for listing notifications.
type ListOptions struct {
	ProjectID  string
	UserID     string
	UnreadOnly bool
	Limit      int
	Offset     int
}
