package notify

import "testing"

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.Title != "" || n.Body != "" {
		t.Error("zero value should have empty title and body")
	}
}
