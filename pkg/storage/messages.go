package storage

import (
	"context"
	"time"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// MessageReader defines read-only access to a match's message history.
// Messages are written by the external messaging system; this service only
// consults content (contact-disclosure detection, decision-timer seeding).
type MessageReader interface {
	// ListMessages retrieves a match's messages in send order.
	ListMessages(ctx context.Context, matchID string) ([]models.Message, error)
}

// DatePlanStore defines access to per-match date plans, which suppress
// countdown expiry and milestone pushes.
type DatePlanStore interface {
	// GetDatePlan retrieves the match's date plan, or nil if none exists.
	GetDatePlan(ctx context.Context, matchID string) (*models.DatePlan, error)

	// CreateDatePlanIfAbsent inserts a date plan only if the match has
	// none, reporting whether the insert happened.
	CreateDatePlanIfAbsent(ctx context.Context, plan *models.DatePlan) (bool, error)
}

// PushRecordStore defines the (match, milestone) send-once guard used by
// the countdown sweep.
type PushRecordStore interface {
	// InsertPushRecord inserts the dedupe marker, reporting false when the
	// milestone was already recorded for the match.
	InsertPushRecord(ctx context.Context, matchID, milestone string, at time.Time) (bool, error)
}
