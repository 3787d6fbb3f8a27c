// Package pricing - Displayed price computation
// Prices are a pure function of the selected location and billing period.
// The calculator holds no mutable state and is safe to call on every change.
package pricing

import (
	"kitchhub/core/catalog"
	"kitchhub/core/types"
	"kitchhub/internal/errors"
)

// Calculator computes displayed prices from an immutable catalog
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates a calculator over the given catalog
func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// Compute prices the starter tier, which is the price shown on the page
func (c *Calculator) Compute(location types.Location, period types.Period) (types.PriceResult, error) {
	return c.ComputeTier(location, period, types.TierStarter)
}

// ComputeTier prices any tier: round-half-up(tierPrice × multiplier)
func (c *Calculator) ComputeTier(location types.Location, period types.Period, tier types.Tier) (types.PriceResult, error) {
	loc, ok := c.catalog.Location(location)
	if !ok {
		return types.PriceResult{}, errors.InvalidSelection("location", string(location))
	}
	per, ok := c.catalog.Period(period)
	if !ok {
		return types.PriceResult{}, errors.InvalidSelection("period", string(period))
	}
	base, ok := loc.Prices.For(tier)
	if !ok {
		return types.PriceResult{}, errors.InvalidSelection("tier", string(tier))
	}

	return types.PriceResult{
		Amount:        ApplyMultiplier(base, per.Multiplier),
		Currency:      c.catalog.Currency(),
		Tier:          tier,
		LocationLabel: loc.Label,
		PeriodLabel:   per.Label,
		CaptionPrefix: c.catalog.CaptionPrefix(),
	}, nil
}

// Price computes a query; an empty tier means the starter tier
func (c *Calculator) Price(q types.PriceQuery) (types.PriceResult, error) {
	tier := q.Tier
	if tier == "" {
		tier = types.TierStarter
	}
	return c.ComputeTier(q.Location, q.Period, tier)
}

// MustCompute is Compute for callers that only pass keys from the catalog's
// option sets. An unknown key is a programming error and panics.
func (c *Calculator) MustCompute(location types.Location, period types.Period) types.PriceResult {
	result, err := c.Compute(location, period)
	if err != nil {
		panic(err.Error())
	}
	return result
}

// Quote prices every tier for one location and period
func (c *Calculator) Quote(location types.Location, period types.Period) (*types.Quote, error) {
	quote := &types.Quote{
		Location: location,
		Period:   period,
		Prices:   make([]types.PriceResult, 0, len(types.Tiers)),
	}
	for _, tier := range types.Tiers {
		result, err := c.ComputeTier(location, period, tier)
		if err != nil {
			return nil, err
		}
		quote.Prices = append(quote.Prices, result)
	}
	return quote, nil
}

// Options returns the closed selection sets the presentation layer may offer
func (c *Calculator) Options() (locations, periods []types.Option) {
	return c.catalog.LocationOptions(), c.catalog.PeriodOptions()
}

// Catalog returns the catalog backing the calculator
func (c *Calculator) Catalog() *catalog.Catalog {
	return c.catalog
}
