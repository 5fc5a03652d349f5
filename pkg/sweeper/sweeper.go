// Package sweeper implements the countdown batch step: it expires ACTIVE
// conversations whose window has passed and sends at most one countdown
// milestone push per match per threshold. The sweeper keeps no state and
// has no internal timer; a scheduler (EventBridge, cron, the /sweep
// endpoint) triggers each run.
package sweeper

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
)

// The four countdown thresholds are a product contract. Most urgent wins;
// a match gets at most one milestone per sweep.
var milestones = []struct {
	Within time.Duration
	Name   string
	Title  string
	Body   string
}{
	{2 * time.Hour, "2h_before", "2 hours left", "Your chat closes in 2 hours. Make a plan!"},
	{24 * time.Hour, "day7_morning", "Last day", "Today is the last day of your chat."},
	{48 * time.Hour, "day5", "2 days left", "Your chat closes in 2 days."},
	{72 * time.Hour, "48h", "3 days left", "3 days left to plan your date."},
}

// Report summarizes one sweep run.
type Report struct {
	Expired int      `json:"expired"`
	Pushes  int      `json:"pushes"`
	Errors  []string `json:"errors"`
}

// Sweeper runs the countdown batch.
type Sweeper struct {
	Store    storage.SweepStore
	Notifier notifications.Notifier

	// Now is the clock, overridable in tests.
	Now func() time.Time
}

// New creates a new Sweeper.
func New(store storage.SweepStore, notifier notifications.Notifier) *Sweeper {
	return &Sweeper{Store: store, Notifier: notifier, Now: time.Now}
}

// Sweep processes every ACTIVE conversation once. Expiration and each
// push are independent: one failure is recorded and the run continues.
func (s *Sweeper) Sweep(ctx context.Context) *Report {
	report := &Report{Errors: []string{}}

	conversations, err := s.Store.ListActiveConversations(ctx)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("list active conversations: %v", err))
		return report
	}

	now := s.Now().UTC()
	for _, conv := range conversations {
		if err := s.sweepConversation(ctx, conv, now, report); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("match %s: %v", conv.MatchID, err))
		}
	}

	return report
}

func (s *Sweeper) sweepConversation(ctx context.Context, conv models.Conversation, now time.Time, report *Report) error {
	if conv.ExpiresAt == nil {
		return nil
	}

	plan, err := s.Store.GetDatePlan(ctx, conv.MatchID)
	if err != nil {
		return err
	}
	if plan != nil {
		// A planned date suspends both expiry and countdown nagging.
		return nil
	}

	if !conv.ExpiresAt.After(now) {
		expired, err := s.Store.ExpireConversation(ctx, conv.MatchID, now)
		if err != nil {
			return err
		}
		if expired {
			report.Expired++
			slog.Info("conversation expired", "match_id", conv.MatchID)
		}
		return nil
	}

	remaining := conv.ExpiresAt.Sub(now)
	for _, milestone := range milestones {
		if remaining > milestone.Within {
			continue
		}

		inserted, err := s.Store.InsertPushRecord(ctx, conv.MatchID, milestone.Name, now)
		if err != nil {
			return err
		}
		if !inserted {
			// Already sent by an earlier (or overlapping) run.
			return nil
		}

		for _, userID := range []string{conv.UserA, conv.UserB} {
			if err := s.Notifier.Notify(ctx, notifications.Notification{
				UserID:  userID,
				Title:   milestone.Title,
				Body:    milestone.Body,
				Type:    "countdown",
				MatchID: conv.MatchID,
			}); err != nil {
				// Best-effort; the dedupe record stays, delivery is not retried.
				report.Errors = append(report.Errors, fmt.Sprintf("notify %s for match %s: %v", userID, conv.MatchID, err))
			}
		}
		report.Pushes++
		return nil
	}

	return nil
}
