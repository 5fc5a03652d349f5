package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/storage"
)

// ActiveWindow is how long a chat stays open once both sides consent.
const ActiveWindow = 7 * 24 * time.Hour

// DecisionSLA is the informational window a participant gets to decide on
// a new match. It gates nothing.
const DecisionSLA = 24 * time.Hour

// Gate decides whether a consent attempt may proceed and, when both sides
// have consented, activates the chat. Checks run in order and short-circuit
// on the first failure; consent is only recorded after every check passes,
// so a failed attempt leaves nothing behind and is safely retryable.
type Gate struct {
	Store  storage.Storage
	Limits models.TierLimits
}

// NewGate creates a new Gate.
func NewGate(store storage.Storage, limits models.TierLimits) *Gate {
	return &Gate{Store: store, Limits: limits}
}

// ConsentResult reports the outcome of a successful consent attempt.
type ConsentResult struct {
	Conversation *models.Conversation
	Activated    bool
}

// Consent runs the activation gate for one participant.
func (g *Gate) Consent(ctx context.Context, matchID, userID string, tier models.Tier) (*ConsentResult, error) {
	// Check 1: match exists, caller participates, nobody blocked anybody.
	match, err := VisibleMatch(ctx, g.Store, matchID, userID)
	if err != nil {
		return nil, err
	}

	conv, err := g.Store.EnsureConversation(ctx, match)
	if err != nil {
		return nil, err
	}

	// Check 2: conversation is not closed.
	if conv.IsTerminal() {
		return nil, storage.ErrConversationTerminal
	}

	// The decision timer is seeded opportunistically; it is informational
	// only and must never fail the attempt.
	if err := g.seedDecisionTimer(ctx, match, conv); err != nil {
		slog.Warn("failed to seed decision timer", "match_id", matchID, "error", err)
	}

	// Check 3: both wallets hold at least one credit.
	var short []string
	for _, participant := range match.Participants() {
		wallet, err := g.Store.EnsureWallet(ctx, participant)
		if err != nil {
			return nil, fmt.Errorf("failed to read wallet for %s: %w", participant, err)
		}
		if wallet.BalanceCents < models.CreditCents {
			short = append(short, participant)
		}
	}
	if len(short) > 0 {
		return nil, &storage.InsufficientCreditsError{ShortUserIDs: short}
	}

	// Check 4: neither participant is at their active-chat limit.
	for _, participant := range match.Participants() {
		limit := g.Limits.LimitFor(g.tierFor(conv, participant, userID, tier))
		count, err := g.Store.CountActiveConversations(ctx, participant, matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to count active chats for %s: %w", participant, err)
		}
		if count >= limit {
			return nil, &storage.ActiveLimitError{UserID: participant, Count: count, Limit: limit}
		}
	}

	// Check 5: record consent; activate when the peer already consented.
	conv, err = g.Store.RecordConsent(ctx, matchID, userID, tier, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if conv.BothConsented() && !conv.IsActive() {
		now := time.Now().UTC()
		if _, err := g.Store.Activate(ctx, matchID, now, now.Add(ActiveWindow)); err != nil {
			return nil, err
		}
		// Re-read regardless of who won the activation race; the stored
		// active_at/expires_at are authoritative either way.
		conv, err = g.Store.GetConversation(ctx, matchID)
		if err != nil {
			return nil, err
		}
	}

	return &ConsentResult{Conversation: conv, Activated: conv.IsActive()}, nil
}

// tierFor resolves the tier to apply for a participant: the caller's own
// label for the caller, the snapshot taken at consent for the peer. A peer
// who has not consented yet has no snapshot and falls back to unknown.
func (g *Gate) tierFor(conv *models.Conversation, participant, callerID string, callerTier models.Tier) models.Tier {
	if participant == callerID {
		return callerTier
	}
	if conv.UserA == participant && conv.TierA != "" {
		return conv.TierA
	}
	if conv.UserB == participant && conv.TierB != "" {
		return conv.TierB
	}
	return models.TierUnknown
}

// seedDecisionTimer starts the one-shot decision timer for the participant
// who did not send the first qualifying message. No qualifying message, no
// timer.
func (g *Gate) seedDecisionTimer(ctx context.Context, match *models.Match, conv *models.Conversation) error {
	if conv.DecisionStartedAt != nil || conv.IsActive() || conv.IsTerminal() {
		return nil
	}

	messages, err := g.Store.ListMessages(ctx, match.MatchID)
	if err != nil {
		return err
	}
	sender := FirstQualifyingSender(messages)
	if sender == "" || !match.HasParticipant(sender) {
		return nil
	}

	now := time.Now().UTC()
	return g.Store.StartDecisionTimer(ctx, match.MatchID, match.Peer(sender), now, now.Add(DecisionSLA))
}

// VisibleMatch fetches the match and applies the visibility rules: a
// missing match, a non-participant caller and a blocked pair all come back
// as ErrMatchNotFound so block state never leaks.
func VisibleMatch(ctx context.Context, store storage.MatchReader, matchID, userID string) (*models.Match, error) {
	match, err := store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.HasParticipant(userID) || match.Blocked() {
		return nil, storage.ErrMatchNotFound
	}
	return match, nil
}
