package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Form.PhonePolicy != "digits" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadJSONOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchhub.json")
	body := `{"server":{"addr":":9090"},"form":{"phone_policy":"french"}}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("addr = %s, want :9090", cfg.Server.Addr)
	}
	if cfg.Form.PhonePolicy != "french" {
		t.Errorf("phone policy = %s, want french", cfg.Form.PhonePolicy)
	}
	if cfg.Server.WriteTimeoutSeconds != 30 {
		t.Errorf("unset fields should keep defaults, got write timeout %d", cfg.Server.WriteTimeoutSeconds)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kitchhub.yaml")
	body := "catalog:\n  path: /etc/kitchhub/catalog.hcl\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Catalog.Path != "/etc/kitchhub/catalog.hcl" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("logging format should keep its default, got %q", cfg.Logging.Format)
	}
}

func TestSaveRoundTripsBothFormats(t *testing.T) {
	for _, name := range []string{"out.json", "out.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			cfg := Default()
			cfg.Catalog.Path = "catalog.hcl"

			if err := cfg.Save(path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			loaded, err := Load(path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if loaded.Catalog.Path != "catalog.hcl" {
				t.Errorf("catalog path lost: %+v", loaded.Catalog)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed JSON")
	}
}
