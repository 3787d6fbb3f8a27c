// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Location is a location key selecting a price-table row (e.g. "paris")
type Location string

// String returns the string representation of the location
func (l Location) String() string {
	return string(l)
}

// Period is a billing-period key selecting a discount multiplier (e.g. "annual")
type Period string

// String returns the string representation of the period
func (p Period) String() string {
	return string(p)
}

const (
	PeriodMonthly   Period = "monthly"
	PeriodQuarterly Period = "quarterly"
	PeriodAnnual    Period = "annual"
)

// Tier is an offer tier within a location's price record
type Tier string

const (
	TierStarter Tier = "starter"
	TierPro     Tier = "pro"
	TierPremium Tier = "premium"
)

// Tiers lists the offer tiers in display order
var Tiers = []Tier{TierStarter, TierPro, TierPremium}

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is a known tier
func (t Tier) IsValid() bool {
	switch t {
	case TierStarter, TierPro, TierPremium:
		return true
	default:
		return false
	}
}

// Option is one entry of a closed selection set offered to the user
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
