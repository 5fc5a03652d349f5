package storage

import (
	"context"

	"github.com/ethanserbantes/wifey-dating-app-sub004/pkg/models"
)

// MatchReader defines the interface for reading match rows. Matches are
// created by the external matching system; this service never writes one.
type MatchReader interface {
	// GetMatch retrieves a match by its ID. It returns ErrMatchNotFound for
	// a missing match; callers are expected to apply the same error to
	// non-participants and blocked pairs so the three are indistinguishable.
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)

	// ListMatchesByUser retrieves every match the user participates in.
	ListMatchesByUser(ctx context.Context, userID string) ([]models.Match, error)
}

// MatchTerminator defines the privileged teardown of a match. Removing the
// match row also destroys its legacy escrow remnants, which live on the
// same item.
type MatchTerminator interface {
	// TerminateMatch deletes the conversation and match rows in a single
	// atomic statement. The conversation delete is conditioned on the
	// activation state the caller observed, so a credit decision based on
	// that observation cannot be invalidated by a concurrent activation.
	// Reports false without error when the observation went stale;
	// terminating an already-terminated match is not an error.
	TerminateMatch(ctx context.Context, matchID string, observedActive bool) (bool, error)
}

// MatchStore combines match reads and termination.
type MatchStore interface {
	MatchReader
	MatchTerminator
}
