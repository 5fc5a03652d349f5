package storage

import (
	"context"
	"time"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// ConversationStore defines the interface for the per-match chat-access
// state machine. Every mutation is a single conditional write; callers
// never read a value and write a decision based on it in a second call.
type ConversationStore interface {
	// EnsureConversation lazily creates the conversation row for a match
	// and returns the current state. Creating an already-existing row is a
	// no-op that returns the stored state.
	EnsureConversation(ctx context.Context, match *models.Match) (*models.Conversation, error)

	// GetConversation retrieves the conversation for a match, or nil if no
	// row exists yet.
	GetConversation(ctx context.Context, matchID string) (*models.Conversation, error)

	// RecordConsent idempotently records one side's consent and tier
	// snapshot and returns the resulting state. Re-consenting keeps the
	// original timestamp. Once the conversation is ACTIVE or TERMINAL the
	// call is a no-op.
	RecordConsent(ctx context.Context, matchID, userID string, tier models.Tier, at time.Time) (*models.Conversation, error)

	// Activate transitions the conversation to ACTIVE, setting active_at
	// and expires_at exactly once. It reports false without error when
	// another writer activated first or the conversation is closed.
	Activate(ctx context.Context, matchID string, at, expiresAt time.Time) (bool, error)

	// StartDecisionTimer sets the one-shot decision timer for userID. The
	// timer starts at most once per match and only while the conversation
	// is neither ACTIVE nor TERMINAL; later calls are no-ops.
	StartDecisionTimer(ctx context.Context, matchID, userID string, at, expiresAt time.Time) error

	// ExpireConversation transitions an ACTIVE conversation whose countdown
	// has passed into TERMINAL("expired"). It reports false without error
	// when the conversation was already terminal or no longer eligible.
	ExpireConversation(ctx context.Context, matchID string, at time.Time) (bool, error)

	// ForceReopen clears the terminal fields, the only sanctioned path out
	// of TERMINAL. Reserved for support tooling.
	ForceReopen(ctx context.Context, matchID string) error

	// ArchiveForUser marks the thread archived for one participant and
	// returns the state as of the same atomic update.
	ArchiveForUser(ctx context.Context, matchID, userID string) (*models.Conversation, error)

	// CountActiveConversations counts the user's currently-ACTIVE matches,
	// excluding excludeMatchID.
	CountActiveConversations(ctx context.Context, userID, excludeMatchID string) (int, error)

	// ListActiveConversations retrieves every ACTIVE conversation, for the
	// countdown sweep.
	ListActiveConversations(ctx context.Context) ([]models.Conversation, error)
}
