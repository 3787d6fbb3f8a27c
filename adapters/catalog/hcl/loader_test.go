package hcl

import (
	"os"
	"path/filepath"
	"testing"

	"kitchhub/core/types"
	"kitchhub/internal/errors"
)

const sampleCatalog = `
currency       = "€"
caption_prefix = "Estimation pour"

location "paris" {
  label   = "Paris"
  starter = 590
  pro     = 990
  premium = 1490
}

location "nantes" {
  starter = 420
  pro     = 760
  premium = 1100
}

period "monthly" {
  label      = "Mensuel"
  multiplier = 1
}

period "annual" {
  label      = "Annuel (-15%)"
  multiplier = 0.85
}
`

func TestParseCatalog(t *testing.T) {
	c, err := NewLoader().Parse([]byte(sampleCatalog), "catalog.hcl")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if errs := c.Validate(); len(errs) > 0 {
		t.Fatalf("parsed catalog invalid: %v", errs)
	}

	locs := c.Locations()
	if len(locs) != 2 || locs[0].Key != "paris" || locs[1].Key != "nantes" {
		t.Fatalf("unexpected locations %+v", locs)
	}
	if locs[1].Label != "Nantes" {
		t.Errorf("missing label should be derived from the key, got %q", locs[1].Label)
	}
	if locs[0].Prices != (types.TierPrices{Starter: 590, Pro: 990, Premium: 1490}) {
		t.Errorf("paris prices = %+v", locs[0].Prices)
	}

	annual, ok := c.Period(types.PeriodAnnual)
	if !ok {
		t.Fatal("annual period missing")
	}
	if annual.Multiplier.String() != "0.85" {
		t.Errorf("annual multiplier = %s, want 0.85", annual.Multiplier)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := NewLoader().LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !c.HasLocation("nantes") || !c.HasPeriod("monthly") {
		t.Error("loaded catalog is missing entries")
	}

	_, err = NewLoader().LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("missing file: expected CONFIG_ERROR, got %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `location "paris" {`},
		{"fractional price", `location "paris" {
  starter = 590.5
  pro     = 990
  premium = 1490
}`},
		{"string price", `location "paris" {
  starter = "590"
  pro     = 990
  premium = 1490
}`},
		{"missing tier", `location "paris" {
  starter = 590
  pro     = 990
}`},
		{"unknown attribute", `location "paris" {
  starter  = 590
  pro      = 990
  premium  = 1490
  discount = 3
}`},
		{"duplicate period", `period "monthly" {
  multiplier = 1
}
period "monthly" {
  multiplier = 1
}`},
		{"variable reference", `period "annual" {
  multiplier = var.discount
}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLoader().Parse([]byte(tt.src), tt.name+".hcl")
			if !errors.IsType(err, errors.TypeParsing) {
				t.Errorf("expected PARSING_ERROR, got %v", err)
			}
		})
	}
}
