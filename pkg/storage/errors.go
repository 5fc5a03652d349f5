package storage

import (
	"errors"
	"fmt"
)

// ErrMatchNotFound is returned when a match does not exist, the caller is
// not a participant, or either side has blocked the other. The three cases
// are deliberately indistinguishable so block state never leaks.
var ErrMatchNotFound = errors.New("match not found")

// ErrConversationTerminal is returned when a conversation has already been
// closed (for example by countdown expiry).
var ErrConversationTerminal = errors.New("conversation is terminal")

// ErrUnknownProduct is returned when a purchase names a product id that is
// not in the catalog.
var ErrUnknownProduct = errors.New("unrecognized product id")

// ErrWalletNotFound is returned when a wallet read finds no row and lazy
// creation was not requested.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrInsufficientBalance is returned when a spend cannot be covered by the
// wallet balance at the moment of the atomic write.
var ErrInsufficientBalance = errors.New("insufficient balance")

// InsufficientCreditsError reports every participant whose wallet cannot
// cover one date credit.
type InsufficientCreditsError struct {
	ShortUserIDs []string
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for users %v", e.ShortUserIDs)
}

// ActiveLimitError reports that a participant is already at their tier's
// concurrent-active-chat limit.
type ActiveLimitError struct {
	UserID string
	Count  int
	Limit  int
}

func (e *ActiveLimitError) Error() string {
	return fmt.Sprintf("user %s has %d active chats (limit %d)", e.UserID, e.Count, e.Limit)
}
