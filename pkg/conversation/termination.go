package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/notifications"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
)

// Spend reasons. Part of the spend idempotency key: at most one debit per
// (user, match, reason) can ever happen.
const (
	SpendReasonContactDisclosure = "contact_disclosure"
	SpendReasonWeMet             = "we_met"
)

// weMetBackfillAge is how far in the past the backfilled date plan is
// stamped, so the feedback prompt window opens immediately.
const weMetBackfillAge = 13 * time.Hour

// TerminationResult reports the facts gathered at the moment of a
// termination action and whether the credit rule fired.
type TerminationResult struct {
	ContactShared bool
	WasActive     bool
	CreditsSpent  bool
}

// Terminator orchestrates the three user actions that end or milestone a
// conversation: unmatch, block, we-met.
type Terminator struct {
	Store    storage.Storage
	Notifier notifications.Notifier
}

// NewTerminator creates a new Terminator.
func NewTerminator(store storage.Storage, notifier notifications.Notifier) *Terminator {
	return &Terminator{Store: store, Notifier: notifier}
}

// Unmatch deletes the match and spends a credit from both sides iff the
// conversation was ACTIVE and contact information was disclosed.
func (t *Terminator) Unmatch(ctx context.Context, matchID, userID string) (*TerminationResult, error) {
	return t.dissolve(ctx, matchID, userID, "unmatch")
}

// Block behaves like unmatch; the block itself is recorded by the safety
// system upstream, and the deleted match is indistinguishable from an
// unmatched one to the peer.
func (t *Terminator) Block(ctx context.Context, matchID, userID string) (*TerminationResult, error) {
	return t.dissolve(ctx, matchID, userID, "block")
}

func (t *Terminator) dissolve(ctx context.Context, matchID, userID, action string) (*TerminationResult, error) {
	match, err := VisibleMatch(ctx, t.Store, matchID, userID)
	if err != nil {
		return nil, err
	}

	// Message history has to be read before the match disappears; the
	// predicate itself is pure.
	messages, err := t.Store.ListMessages(ctx, matchID)
	if err != nil {
		return nil, err
	}
	contactShared := ContainsContactDisclosure(messages)

	// The spend lands before any row is deleted. Spend is idempotent on
	// (user, match, reason), so a crash between the spend and the deletes
	// replays cleanly on retry; the reverse order would lose the facts
	// together with the conversation row.
	for attempt := 0; attempt < 2; attempt++ {
		conv, err := t.Store.GetConversation(ctx, matchID)
		if err != nil {
			return nil, err
		}
		wasActive := conv != nil && conv.IsActive()

		spent := wasActive && contactShared
		if spent {
			t.spendBoth(ctx, match, SpendReasonContactDisclosure, map[string]string{"action": action})
		}

		// Conversation and match rows die in one transaction, conditioned
		// on the activation state observed above: a consent racing the
		// teardown cannot slip past the credit decision.
		observedActive := conv != nil && conv.ActiveAt != nil
		deleted, err := t.Store.TerminateMatch(ctx, matchID, observedActive)
		if err != nil {
			return nil, err
		}
		if deleted {
			return &TerminationResult{ContactShared: contactShared, WasActive: wasActive, CreditsSpent: spent}, nil
		}
	}

	return nil, fmt.Errorf("conversation for match %s kept changing during %s", matchID, action)
}

// WeMet archives the thread for the actor and spends a credit from both
// participants unconditionally — meeting in person is the milestone the
// credit pays for. A date-plan record dated in the past is backfilled if
// none exists, so the feedback prompt has a qualifying window.
func (t *Terminator) WeMet(ctx context.Context, matchID, userID string) (*TerminationResult, error) {
	match, err := VisibleMatch(ctx, t.Store, matchID, userID)
	if err != nil {
		return nil, err
	}

	messages, err := t.Store.ListMessages(ctx, matchID)
	if err != nil {
		return nil, err
	}
	contactShared := ContainsContactDisclosure(messages)

	// We-met can arrive before either side ever consented; the archive
	// update needs a row to land on.
	if _, err := t.Store.EnsureConversation(ctx, match); err != nil {
		return nil, err
	}

	conv, err := t.Store.ArchiveForUser(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}
	wasActive := conv.IsActive()

	t.spendBoth(ctx, match, SpendReasonWeMet, map[string]string{"action": "we_met"})

	now := time.Now().UTC()
	created, err := t.Store.CreateDatePlanIfAbsent(ctx, &models.DatePlan{
		MatchID:   matchID,
		PlannedAt: now.Add(-weMetBackfillAge),
		CreatedAt: now,
	})
	if err != nil {
		slog.Error("failed to backfill date plan", "match_id", matchID, "error", err)
	} else if created {
		slog.Info("backfilled date plan", "match_id", matchID)
	}

	if err := t.Notifier.Notify(ctx, notifications.Notification{
		UserID:  match.Peer(userID),
		Title:   "You met!",
		Body:    "Tell us how your date went.",
		Type:    "we_met",
		MatchID: matchID,
	}); err != nil {
		slog.Error("failed to send we-met notification", "match_id", matchID, "error", err)
	}

	return &TerminationResult{ContactShared: contactShared, WasActive: wasActive, CreditsSpent: true}, nil
}

// spendBoth debits one credit from each participant. Each side is
// independent and idempotent on (user, match, reason); an insolvent wallet
// is logged for support, never surfaced — the rule already fired.
func (t *Terminator) spendBoth(ctx context.Context, match *models.Match, reason string, meta map[string]string) {
	for _, participant := range match.Participants() {
		_, err := t.Store.Spend(ctx, participant, match.MatchID, reason, models.CreditCents, meta)
		if err != nil {
			if errors.Is(err, storage.ErrInsufficientBalance) {
				slog.Warn("credit spend not covered", "user_id", participant, "match_id", match.MatchID, "reason", reason)
				continue
			}
			slog.Error("failed to spend credit", "user_id", participant, "match_id", match.MatchID, "reason", reason, "error", err)
		}
	}
}
