package storage

// Storage defines the root interface for the entire data layer.
// It composes all available storage operations. Components should depend on
// the more granular interfaces (ConversationStore, LedgerStore, SweepStore)
// instead of this one.
type Storage interface {
	MatchStore
	ConversationStore
	WalletStore
	LedgerStore
	EscrowReleaser
	MessageReader
	DatePlanStore
	PushRecordStore
}

// SweepStore defines the subset of operations the countdown sweep needs.
type SweepStore interface {
	ConversationStore
	DatePlanStore
	PushRecordStore
}
