package models

import (
	"time"
)

// LedgerAction defines the possible kinds of ledger entries.
type LedgerAction string

const (
	PURCHASE LedgerAction = "PURCHASE"
	SPEND    LedgerAction = "SPEND"
	REFUND   LedgerAction = "REFUND"
	ADJUST   LedgerAction = "ADJUST"
)

// CreditCents is the price of one date credit.
const CreditCents int64 = 3000

// MaxDisplayCredits caps the credit count shown to clients.
const MaxDisplayCredits int64 = 3

// ConversationStatus is the derived lifecycle tag stored alongside a
// conversation so the sweeper can query by it.
type ConversationStatus string

const (
	StatusNone           ConversationStatus = "NONE"
	StatusConsentPending ConversationStatus = "CONSENT_PENDING"
	StatusActive         ConversationStatus = "ACTIVE"
	StatusTerminal       ConversationStatus = "TERMINAL"
)

// TerminalExpired marks a conversation closed by the countdown sweep.
const TerminalExpired = "expired"

// Match represents a pair of users created by the external matching system.
// This service only reads matches and deletes them on unmatch/block.
type Match struct {
	MatchID      string    `dynamodbav:"match_id"`
	UserA        string    `dynamodbav:"user_a"`
	UserB        string    `dynamodbav:"user_b"`
	EscrowCentsA int64     `dynamodbav:"escrow_cents_a,omitempty"`
	EscrowCentsB int64     `dynamodbav:"escrow_cents_b,omitempty"`
	BlockedBy    []string  `dynamodbav:"blocked_by,stringset,omitempty"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
}

// Participants returns both user ids of the match.
func (m *Match) Participants() []string {
	return []string{m.UserA, m.UserB}
}

// HasParticipant reports whether userID is one of the match's two sides.
func (m *Match) HasParticipant(userID string) bool {
	return m.UserA == userID || m.UserB == userID
}

// Peer returns the other side of the match relative to userID.
func (m *Match) Peer(userID string) string {
	if m.UserA == userID {
		return m.UserB
	}
	return m.UserA
}

// Blocked reports whether either side has blocked the other.
func (m *Match) Blocked() bool {
	return len(m.BlockedBy) > 0
}

// EscrowFor returns the legacy escrow amount held for userID on this match.
func (m *Match) EscrowFor(userID string) int64 {
	if m.UserA == userID {
		return m.EscrowCentsA
	}
	if m.UserB == userID {
		return m.EscrowCentsB
	}
	return 0
}

// Conversation is the per-match chat-access state machine row, created
// lazily on the first consent attempt.
type Conversation struct {
	MatchID string `dynamodbav:"match_id"`
	UserA   string `dynamodbav:"user_a"`
	UserB   string `dynamodbav:"user_b"`

	ConsentedAAt *time.Time `dynamodbav:"consented_a_at,omitempty"`
	ConsentedBAt *time.Time `dynamodbav:"consented_b_at,omitempty"`
	TierA        Tier       `dynamodbav:"tier_a,omitempty"`
	TierB        Tier       `dynamodbav:"tier_b,omitempty"`

	// One-shot decision timer. Informational SLA only; gates nothing.
	DecisionUserID    string     `dynamodbav:"decision_user_id,omitempty"`
	DecisionStartedAt *time.Time `dynamodbav:"decision_started_at,omitempty"`
	DecisionExpiresAt *time.Time `dynamodbav:"decision_expires_at,omitempty"`

	ActiveAt  *time.Time `dynamodbav:"active_at,omitempty"`
	ExpiresAt *time.Time `dynamodbav:"expires_at,omitempty"`

	TerminalState string     `dynamodbav:"terminal_state,omitempty"`
	TerminalAt    *time.Time `dynamodbav:"terminal_at,omitempty"`

	ArchivedBy []string `dynamodbav:"archived_by,stringset,omitempty"`

	// Status is derived from the fields above and maintained on every
	// transition so the sweeper can query the status-index GSI.
	Status ConversationStatus `dynamodbav:"status"`
}

// IsActive reports whether the conversation is currently ACTIVE.
func (c *Conversation) IsActive() bool {
	return c.ActiveAt != nil && c.TerminalState == ""
}

// IsTerminal reports whether the conversation is closed.
func (c *Conversation) IsTerminal() bool {
	return c.TerminalState != ""
}

// ConsentedAt returns the consent timestamp recorded for userID, if any.
func (c *Conversation) ConsentedAt(userID string) *time.Time {
	if c.UserA == userID {
		return c.ConsentedAAt
	}
	if c.UserB == userID {
		return c.ConsentedBAt
	}
	return nil
}

// BothConsented reports whether both sides have recorded consent.
func (c *Conversation) BothConsented() bool {
	return c.ConsentedAAt != nil && c.ConsentedBAt != nil
}

// Wallet represents a user's date-credit balance. The balance is a cache
// of the ledger; entries are the system of record.
type Wallet struct {
	UserID       string    `dynamodbav:"user_id"`
	BalanceCents int64     `dynamodbav:"balance_cents"`
	Version      int64     `dynamodbav:"version"`
	CreatedAt    time.Time `dynamodbav:"created_at"`
}

// Credits returns the display credit count, capped at MaxDisplayCredits.
func (w *Wallet) Credits() int64 {
	credits := w.BalanceCents / CreditCents
	if credits > MaxDisplayCredits {
		return MaxDisplayCredits
	}
	return credits
}

// LedgerEntry is a single immutable record of one balance-affecting event.
// For dedupeable actions the entry id is deterministic so the insert
// condition doubles as the idempotency guard.
type LedgerEntry struct {
	EntryID     string            `dynamodbav:"entry_id"`
	UserID      string            `dynamodbav:"user_id"`
	MatchID     string            `dynamodbav:"match_id,omitempty"`
	Action      LedgerAction      `dynamodbav:"action"`
	AmountCents int64             `dynamodbav:"amount_cents"`
	Meta        map[string]string `dynamodbav:"meta,omitempty"`
	Timestamp   time.Time         `dynamodbav:"timestamp"`
}

// Signed returns the entry's contribution to the wallet balance.
func (e *LedgerEntry) Signed() int64 {
	if e.Action == SPEND {
		return -e.AmountCents
	}
	return e.AmountCents
}

// MessageKind classifies chat messages for the decision timer and the
// contact-disclosure detector.
type MessageKind string

const (
	MessageKindUser         MessageKind = "user"
	MessageKindSystem       MessageKind = "system"
	MessageKindFeedback     MessageKind = "feedback"
	MessageKindCreditPrompt MessageKind = "credit_prompt"
)

// Message is a read-only view of one chat message. Messages are written by
// the external messaging system; this service only inspects content.
type Message struct {
	MatchID   string      `dynamodbav:"match_id"`
	MessageID string      `dynamodbav:"message_id"`
	SenderID  string      `dynamodbav:"sender_id"`
	Kind      MessageKind `dynamodbav:"kind"`
	Body      string      `dynamodbav:"body"`
	SentAt    time.Time   `dynamodbav:"sent_at"`
}

// DatePlan records that a pair scheduled (or reported) an in-person date.
type DatePlan struct {
	MatchID   string    `dynamodbav:"match_id"`
	PlannedAt time.Time `dynamodbav:"planned_at"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// PushRecord is a permanent (match, milestone) send-once marker.
type PushRecord struct {
	MatchID   string    `dynamodbav:"match_id"`
	Milestone string    `dynamodbav:"milestone"`
	SentAt    time.Time `dynamodbav:"sent_at"`
}
