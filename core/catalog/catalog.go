// Package catalog - Authoritative price catalog
// Holds the price table, the discount table and their display labels.
// A catalog is built once at startup and never mutated afterwards.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kitchhub/core/types"
)

const (
	// DefaultCurrency is the symbol appended to displayed amounts
	DefaultCurrency = "€"

	// DefaultCaptionPrefix starts every estimate caption
	DefaultCaptionPrefix = "Estimation pour"
)

// LocationEntry is a catalog row for one location
type LocationEntry struct {
	Key    types.Location
	Label  string
	Prices types.TierPrices
}

// PeriodEntry is a catalog row for one billing period
type PeriodEntry struct {
	Key        types.Period
	Label      string
	Multiplier decimal.Decimal
}

// Catalog is the immutable set of selectable locations and periods
type Catalog struct {
	currency      string
	captionPrefix string

	locations []*LocationEntry
	periods   []*PeriodEntry

	byLocation map[types.Location]*LocationEntry
	byPeriod   map[types.Period]*PeriodEntry
}

// New creates an empty catalog
func New(currency, captionPrefix string) *Catalog {
	if currency == "" {
		currency = DefaultCurrency
	}
	if captionPrefix == "" {
		captionPrefix = DefaultCaptionPrefix
	}
	return &Catalog{
		currency:      currency,
		captionPrefix: captionPrefix,
		byLocation:    make(map[types.Location]*LocationEntry),
		byPeriod:      make(map[types.Period]*PeriodEntry),
	}
}

// AddLocation registers a location row. Keys must be unique.
func (c *Catalog) AddLocation(entry LocationEntry) error {
	if _, exists := c.byLocation[entry.Key]; exists {
		return fmt.Errorf("duplicate location %q", entry.Key)
	}
	if entry.Label == "" {
		entry.Label = labelFromKey(string(entry.Key))
	}
	e := &entry
	c.locations = append(c.locations, e)
	c.byLocation[e.Key] = e
	return nil
}

// AddPeriod registers a billing period row. Keys must be unique.
func (c *Catalog) AddPeriod(entry PeriodEntry) error {
	if _, exists := c.byPeriod[entry.Key]; exists {
		return fmt.Errorf("duplicate period %q", entry.Key)
	}
	if entry.Label == "" {
		entry.Label = labelFromKey(string(entry.Key))
	}
	e := &entry
	c.periods = append(c.periods, e)
	c.byPeriod[e.Key] = e
	return nil
}

// Currency returns the display currency symbol
func (c *Catalog) Currency() string {
	return c.currency
}

// CaptionPrefix returns the text that starts each caption
func (c *Catalog) CaptionPrefix() string {
	return c.captionPrefix
}

// Location looks up a location row
func (c *Catalog) Location(key types.Location) (*LocationEntry, bool) {
	e, ok := c.byLocation[key]
	return e, ok
}

// Period looks up a period row
func (c *Catalog) Period(key types.Period) (*PeriodEntry, bool) {
	e, ok := c.byPeriod[key]
	return e, ok
}

// HasLocation reports whether key belongs to the closed location set
func (c *Catalog) HasLocation(key string) bool {
	_, ok := c.byLocation[types.Location(key)]
	return ok
}

// HasPeriod reports whether key belongs to the closed period set
func (c *Catalog) HasPeriod(key string) bool {
	_, ok := c.byPeriod[types.Period(key)]
	return ok
}

// Locations returns location rows in catalog order
func (c *Catalog) Locations() []LocationEntry {
	out := make([]LocationEntry, 0, len(c.locations))
	for _, e := range c.locations {
		out = append(out, *e)
	}
	return out
}

// Periods returns period rows in catalog order
func (c *Catalog) Periods() []PeriodEntry {
	out := make([]PeriodEntry, 0, len(c.periods))
	for _, e := range c.periods {
		out = append(out, *e)
	}
	return out
}

// PriceTable returns a copy of the location → tier prices mapping
func (c *Catalog) PriceTable() types.PriceTable {
	table := make(types.PriceTable, len(c.locations))
	for _, e := range c.locations {
		table[e.Key] = e.Prices
	}
	return table
}

// DiscountTable returns a copy of the period → multiplier mapping
func (c *Catalog) DiscountTable() types.DiscountTable {
	table := make(types.DiscountTable, len(c.periods))
	for _, e := range c.periods {
		table[e.Key] = e.Multiplier
	}
	return table
}

// LocationOptions returns the closed location selection set
func (c *Catalog) LocationOptions() []types.Option {
	out := make([]types.Option, 0, len(c.locations))
	for _, e := range c.locations {
		out = append(out, types.Option{Key: string(e.Key), Label: e.Label})
	}
	return out
}

// PeriodOptions returns the closed period selection set
func (c *Catalog) PeriodOptions() []types.Option {
	out := make([]types.Option, 0, len(c.periods))
	for _, e := range c.periods {
		out = append(out, types.Option{Key: string(e.Key), Label: e.Label})
	}
	return out
}

// labelFromKey derives a display label when the presentation layer supplies none
func labelFromKey(key string) string {
	return cases.Title(language.French).String(key)
}

// Default returns the built-in catalog
func Default() *Catalog {
	c := New(DefaultCurrency, DefaultCaptionPrefix)

	for _, e := range []LocationEntry{
		{Key: "paris", Label: "Paris", Prices: types.TierPrices{Starter: 590, Pro: 990, Premium: 1490}},
		{Key: "lyon", Label: "Lyon", Prices: types.TierPrices{Starter: 490, Pro: 890, Premium: 1290}},
		{Key: "marseille", Label: "Marseille", Prices: types.TierPrices{Starter: 490, Pro: 850, Premium: 1250}},
		{Key: "lille", Label: "Lille", Prices: types.TierPrices{Starter: 440, Pro: 790, Premium: 1190}},
		{Key: "bordeaux", Label: "Bordeaux", Prices: types.TierPrices{Starter: 490, Pro: 890, Premium: 1290}},
	} {
		_ = c.AddLocation(e)
	}

	for _, e := range []PeriodEntry{
		{Key: types.PeriodMonthly, Label: "Mensuel", Multiplier: decimal.NewFromInt(1)},
		{Key: types.PeriodQuarterly, Label: "Trimestriel (-5%)", Multiplier: decimal.RequireFromString("0.95")},
		{Key: types.PeriodAnnual, Label: "Annuel (-15%)", Multiplier: decimal.RequireFromString("0.85")},
	} {
		_ = c.AddPeriod(e)
	}

	return c
}
