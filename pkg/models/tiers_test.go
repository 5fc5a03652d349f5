package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTier(t *testing.T) {
	t.Run("Known Tiers", func(t *testing.T) {
		tier, err := ParseTier("serious")
		assert.NoError(t, err)
		assert.Equal(t, TierSerious, tier)

		tier, err = ParseTier("committed")
		assert.NoError(t, err)
		assert.Equal(t, TierCommitted, tier)
	})

	t.Run("Missing Tier Is Unknown", func(t *testing.T) {
		tier, err := ParseTier("")
		assert.NoError(t, err)
		assert.Equal(t, TierUnknown, tier)
	})

	t.Run("Typo Is An Error", func(t *testing.T) {
		_, err := ParseTier("premium")
		assert.Error(t, err)
	})
}

func TestParseTierLimits(t *testing.T) {
	t.Run("Overrides Defaults", func(t *testing.T) {
		limits, err := ParseTierLimits("serious=2,committed=5")
		assert.NoError(t, err)
		assert.Equal(t, 2, limits[TierSerious])
		assert.Equal(t, 5, limits[TierCommitted])
	})

	t.Run("Malformed Pair", func(t *testing.T) {
		_, err := ParseTierLimits("serious")
		assert.Error(t, err)
	})

	t.Run("Zero Limit Rejected", func(t *testing.T) {
		_, err := ParseTierLimits("serious=0")
		assert.Error(t, err)
	})
}

func TestLimitFor(t *testing.T) {
	limits := DefaultTierLimits()

	assert.Equal(t, 1, limits.LimitFor(TierSerious))
	assert.Equal(t, 3, limits.LimitFor(TierCommitted))
	// Unknown falls back to the most conservative limit.
	assert.Equal(t, 1, limits.LimitFor(TierUnknown))
}

func TestWalletCredits(t *testing.T) {
	t.Run("Whole Credits Only", func(t *testing.T) {
		w := &Wallet{BalanceCents: 2999}
		assert.Equal(t, int64(0), w.Credits())

		w.BalanceCents = 3000
		assert.Equal(t, int64(1), w.Credits())
	})

	t.Run("Display Cap", func(t *testing.T) {
		w := &Wallet{BalanceCents: 15000}
		assert.Equal(t, MaxDisplayCredits, w.Credits())
	})
}

func TestLedgerEntrySigned(t *testing.T) {
	spend := &LedgerEntry{Action: SPEND, AmountCents: 3000}
	assert.Equal(t, int64(-3000), spend.Signed())

	purchase := &LedgerEntry{Action: PURCHASE, AmountCents: 3000}
	assert.Equal(t, int64(3000), purchase.Signed())
}
