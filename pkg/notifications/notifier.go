package notifications

import (
	"context"
)

// Notification is one push to deliver to a user. Delivery mechanics are
// downstream; this service only enqueues.
type Notification struct {
	UserID  string `json:"user_id"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Type    string `json:"type"`
	MatchID string `json:"match_id,omitempty"`
}

// Notifier defines the interface for the push-notification collaborator.
// Sends are best-effort: failures are logged by callers, never retried
// synchronously, never rolled back.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NoOpNotifier is a notifier that does nothing.
type NoOpNotifier struct{}

// Notify does nothing.
func (p *NoOpNotifier) Notify(ctx context.Context, n Notification) error {
	return nil
}
