package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Tier is a user's subscription level. Tiers govern how many matches a
// user may hold ACTIVE at once; the limits themselves are injected
// configuration, not properties of the tier.
type Tier string

const (
	TierSerious   Tier = "serious"
	TierCommitted Tier = "committed"
	TierUnknown   Tier = "unknown"
)

// ParseTier validates a tier label from a client or the tier collaborator.
// Unrecognized labels are an error rather than silently mapped, so a typo
// in a client build cannot grant the wrong limit.
func ParseTier(s string) (Tier, error) {
	switch Tier(s) {
	case TierSerious, TierCommitted:
		return Tier(s), nil
	case TierUnknown, "":
		return TierUnknown, nil
	default:
		return TierUnknown, fmt.Errorf("unrecognized tier %q", s)
	}
}

// TierLimits maps each tier to its concurrent-active-chat limit.
type TierLimits map[Tier]int

// DefaultTierLimits is the product default, overridable via configuration.
func DefaultTierLimits() TierLimits {
	return TierLimits{
		TierSerious:   1,
		TierCommitted: 3,
	}
}

// ParseTierLimits parses a "serious=1,committed=3" configuration string.
func ParseTierLimits(raw string) (TierLimits, error) {
	limits := DefaultTierLimits()
	for _, pair := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			return nil, fmt.Errorf("malformed tier limit %q", pair)
		}
		tier, err := ParseTier(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		limit, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || limit < 1 {
			return nil, fmt.Errorf("invalid limit for tier %q: %q", name, value)
		}
		limits[tier] = limit
	}
	return limits, nil
}

// LimitFor returns the active-chat limit for a tier. Unknown tiers fall
// back to the serious limit, the most conservative one.
func (l TierLimits) LimitFor(tier Tier) int {
	if limit, ok := l[tier]; ok {
		return limit
	}
	return l[TierSerious]
}
