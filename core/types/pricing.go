// Package types - Pricing types
package types

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// TierPrices is the monthly price of each offer tier at one location, in whole currency units
type TierPrices struct {
	Starter int64 `json:"starter"`
	Pro     int64 `json:"pro"`
	Premium int64 `json:"premium"`
}

// For returns the price of the given tier
func (p TierPrices) For(t Tier) (int64, bool) {
	switch t {
	case TierStarter:
		return p.Starter, true
	case TierPro:
		return p.Pro, true
	case TierPremium:
		return p.Premium, true
	default:
		return 0, false
	}
}

// PriceTable maps a location to its tier prices
type PriceTable map[Location]TierPrices

// DiscountTable maps a billing period to a multiplier in (0,1]
type DiscountTable map[Period]decimal.Decimal

// PriceQuery selects one cell of the price grid
type PriceQuery struct {
	Location Location `json:"location"`
	Period   Period   `json:"period"`
	Tier     Tier     `json:"tier,omitempty"`
}

// PriceResult is the displayed price for a query
type PriceResult struct {
	// Amount is the rounded price in whole currency units
	Amount int64 `json:"amount"`

	// Currency is the display symbol appended to the amount
	Currency string `json:"currency"`

	// Tier is the priced tier
	Tier Tier `json:"tier"`

	// LocationLabel is the display text of the selected location
	LocationLabel string `json:"location_label"`

	// PeriodLabel is the display text of the selected period
	PeriodLabel string `json:"period_label"`

	// CaptionPrefix is prepended to the caption labels
	CaptionPrefix string `json:"-"`
}

// Display returns the amount as shown on the page, e.g. "502€"
func (r PriceResult) Display() string {
	return strconv.FormatInt(r.Amount, 10) + r.Currency
}

// Caption returns the estimate caption, e.g. "Estimation pour Paris - Annuel (-15%)"
func (r PriceResult) Caption() string {
	return r.CaptionPrefix + " " + r.LocationLabel + " - " + r.PeriodLabel
}

// Quote groups the prices of every tier for one location and period
type Quote struct {
	Location Location      `json:"location"`
	Period   Period        `json:"period"`
	Prices   []PriceResult `json:"prices"`
}
