// Package notify sends desktop notifications over D-Bus.
package notify

// Notification describes one desktop notification.
type Notification struct {
	Title   string // summary line (required)
	Body    string // body text, may carry basic markup
	Icon    string // icon name or image path
	Timeout int32  // ms, -1 for the server default, 0 for never expire
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns the server-assigned ID.
	// Returns 0 and nil when notifications are unavailable.
	Notify(n Notification) (uint32, error)
}
