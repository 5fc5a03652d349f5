package storage

import (
	"context"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// WalletStore defines the interface for wallet reads. Wallets are created
// lazily; the balance is a cache of the ledger.
type WalletStore interface {
	// GetWallet retrieves a user's wallet. Returns ErrWalletNotFound when
	// no row exists.
	GetWallet(ctx context.Context, userID string) (*models.Wallet, error)

	// EnsureWallet retrieves the wallet, creating the zero wallet first if
	// none exists.
	EnsureWallet(ctx context.Context, userID string) (*models.Wallet, error)
}

// LedgerWriter defines the append-only ledger operations. Every write is
// one atomic statement combining the entry insert with the balance change;
// entries are never updated or deleted.
type LedgerWriter interface {
	// Purchase credits the wallet for a store purchase, idempotent on the
	// transaction id (checked across both the current and the legacy entry
	// id scheme). Repeat calls report alreadyApplied without a second
	// credit. Product validation happens upstream; the amount here is the
	// one the billing collaborator reported.
	Purchase(ctx context.Context, userID, transactionID, productID string, amountCents int64) (alreadyApplied bool, err error)

	// Spend debits the wallet, idempotent on (userID, matchID, reason): at
	// most one SPEND entry ever exists for the tuple. The entry and the
	// debit are one atomic write — an entry is never recorded without a
	// successful debit. Reports applied=false when the tuple was already
	// spent; returns ErrInsufficientBalance when the wallet cannot cover
	// the amount, in which case nothing is written.
	Spend(ctx context.Context, userID, matchID, reason string, amountCents int64, meta map[string]string) (applied bool, err error)

	// Refund credits the wallet back for a match. Not deduplicated here;
	// the caller guarantees at-most-once per real-world event.
	Refund(ctx context.Context, userID, matchID, reason string, amountCents int64) error

	// Adjust applies a support correction to the wallet. Not deduplicated
	// here; the caller guarantees at-most-once per reason tag.
	Adjust(ctx context.Context, userID, reason string, amountCents int64) error
}

// LedgerReader defines the interface for reading ledger data.
type LedgerReader interface {
	// ListLedgerEntries retrieves a user's most recent ledger entries.
	ListLedgerEntries(ctx context.Context, userID string, limit int32) ([]models.LedgerEntry, error)
}

// LedgerStore combines ledger reads and writes.
type LedgerStore interface {
	LedgerWriter
	LedgerReader
}

// EscrowReleaser defines the legacy escrow migration, invoked
// opportunistically on every wallet-status read. The release for each
// match is atomic, so concurrent status reads cannot double-release.
type EscrowReleaser interface {
	// ReleaseEscrow sums the user's legacy per-match escrow deposits,
	// zeroes them, credits the wallet and appends ADJUST entries. Returns
	// the total released, zero when there was nothing left to migrate.
	ReleaseEscrow(ctx context.Context, userID string) (int64, error)
}
