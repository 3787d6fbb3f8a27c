package catalog

import (
	"testing"

	"github.com/shopspring/decimal"

	"kitchhub/core/types"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c := Default()
	if errs := c.Validate(); len(errs) > 0 {
		t.Fatalf("default catalog failed validation: %v", errs)
	}

	if got := len(c.Locations()); got != 5 {
		t.Errorf("expected 5 locations, got %d", got)
	}
	if got := len(c.Periods()); got != 3 {
		t.Errorf("expected 3 periods, got %d", got)
	}

	paris, ok := c.Location("paris")
	if !ok {
		t.Fatal("paris missing from default catalog")
	}
	if paris.Prices.Starter != 590 {
		t.Errorf("paris starter = %d, want 590", paris.Prices.Starter)
	}

	annual, ok := c.Period(types.PeriodAnnual)
	if !ok {
		t.Fatal("annual missing from default catalog")
	}
	if !annual.Multiplier.Equal(decimal.RequireFromString("0.85")) {
		t.Errorf("annual multiplier = %s, want 0.85", annual.Multiplier)
	}
}

func TestOptionsKeepCatalogOrder(t *testing.T) {
	opts := Default().LocationOptions()
	want := []string{"paris", "lyon", "marseille", "lille", "bordeaux"}
	for i, key := range want {
		if opts[i].Key != key {
			t.Errorf("option %d = %s, want %s", i, opts[i].Key, key)
		}
	}
}

func TestDuplicateKeysRejected(t *testing.T) {
	c := New("", "")
	if err := c.AddLocation(LocationEntry{Key: "lyon", Prices: types.TierPrices{Starter: 1, Pro: 2, Premium: 3}}); err != nil {
		t.Fatalf("first AddLocation: %v", err)
	}
	if err := c.AddLocation(LocationEntry{Key: "lyon"}); err == nil {
		t.Error("expected duplicate location to be rejected")
	}
}

func TestMissingLabelDerivedFromKey(t *testing.T) {
	c := New("", "")
	_ = c.AddLocation(LocationEntry{Key: "toulouse", Prices: types.TierPrices{Starter: 1, Pro: 2, Premium: 3}})
	e, _ := c.Location("toulouse")
	if e.Label != "Toulouse" {
		t.Errorf("label = %q, want Toulouse", e.Label)
	}
	if c.Currency() != DefaultCurrency || c.CaptionPrefix() != DefaultCaptionPrefix {
		t.Error("empty currency and prefix should fall back to defaults")
	}
}

func TestValidationRules(t *testing.T) {
	tests := []struct {
		name     string
		location LocationEntry
		period   PeriodEntry
		wantErrs int
	}{
		{
			name:     "valid",
			location: LocationEntry{Key: "a", Prices: types.TierPrices{Starter: 10, Pro: 20, Premium: 30}},
			period:   PeriodEntry{Key: "p", Multiplier: decimal.NewFromInt(1)},
			wantErrs: 0,
		},
		{
			name:     "zero price",
			location: LocationEntry{Key: "a", Prices: types.TierPrices{Starter: 0, Pro: 20, Premium: 30}},
			period:   PeriodEntry{Key: "p", Multiplier: decimal.NewFromInt(1)},
			wantErrs: 1,
		},
		{
			name:     "decreasing tiers",
			location: LocationEntry{Key: "a", Prices: types.TierPrices{Starter: 30, Pro: 20, Premium: 10}},
			period:   PeriodEntry{Key: "p", Multiplier: decimal.NewFromInt(1)},
			wantErrs: 1,
		},
		{
			name:     "multiplier above one",
			location: LocationEntry{Key: "a", Prices: types.TierPrices{Starter: 10, Pro: 20, Premium: 30}},
			period:   PeriodEntry{Key: "p", Multiplier: decimal.RequireFromString("1.2")},
			wantErrs: 1,
		},
		{
			name:     "zero multiplier",
			location: LocationEntry{Key: "a", Prices: types.TierPrices{Starter: 10, Pro: 20, Premium: 30}},
			period:   PeriodEntry{Key: "p", Multiplier: decimal.Zero},
			wantErrs: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("", "")
			_ = c.AddLocation(tt.location)
			_ = c.AddPeriod(tt.period)
			if errs := c.Validate(); len(errs) != tt.wantErrs {
				t.Errorf("got %d errors (%v), want %d", len(errs), errs, tt.wantErrs)
			}
		})
	}
}

func TestEmptyCatalogInvalid(t *testing.T) {
	if errs := New("", "").Validate(); len(errs) != 2 {
		t.Errorf("expected 2 errors for an empty catalog, got %v", errs)
	}
}
