package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"kitchhub/core/form"
	"kitchhub/core/types"
	"kitchhub/internal/config"
	"kitchhub/internal/errors"
)

func TestCoreWithDefaults(t *testing.T) {
	core, err := Core(config.Default())
	if err != nil {
		t.Fatalf("Core: %v", err)
	}
	if core.Schema().PhonePolicy() != form.PhoneDigits {
		t.Errorf("default phone policy = %s", core.Schema().PhonePolicy())
	}
	if got := core.Calculator().MustCompute("lille", types.PeriodQuarterly).Amount; got != 418 {
		t.Errorf("lille quarterly = %d, want 418", got)
	}
}

func TestCoreWithCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.hcl")
	src := `
location "rennes" {
  label   = "Rennes"
  starter = 400
  pro     = 700
  premium = 1000
}
period "monthly" {
  label      = "Mensuel"
  multiplier = 1
}
`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Catalog.Path = path
	cfg.Form.PhonePolicy = "french"

	core, err := Core(cfg)
	if err != nil {
		t.Fatalf("Core: %v", err)
	}
	if core.Schema().PhonePolicy() != form.PhoneFrench {
		t.Errorf("phone policy = %s, want french", core.Schema().PhonePolicy())
	}
	result, err := core.Calculator().Compute("rennes", types.PeriodMonthly)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if result.Caption() != "Estimation pour Rennes - Mensuel" {
		t.Errorf("caption = %q", result.Caption())
	}
}

func TestCoreRejectsUnknownPhonePolicy(t *testing.T) {
	cfg := config.Default()
	cfg.Form.PhonePolicy = "e164"
	if _, err := Core(cfg); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}
