// Package bootstrap turns a configuration into a ready booking core.
package bootstrap

import (
	"go.uber.org/zap"

	cataloghcl "kitchhub/adapters/catalog/hcl"
	"kitchhub/core/catalog"
	"kitchhub/core/engine"
	"kitchhub/core/form"
	"kitchhub/internal/config"
	"kitchhub/internal/errors"
	"kitchhub/internal/logging"
)

// Catalog returns the configured catalog: the HCL file if one is set,
// the built-in catalog otherwise
func Catalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path == "" {
		return catalog.Default(), nil
	}
	return cataloghcl.NewLoader().LoadFile(cfg.Catalog.Path)
}

// Schema returns the lead form schema for the configured phone policy
func Schema(cfg *config.Config) (*form.Schema, error) {
	policy := form.PhonePolicy(cfg.Form.PhonePolicy)
	if policy == "" {
		policy = form.PhoneDigits
	}
	schema, err := form.NewSchema(form.WithPhonePolicy(policy))
	if err != nil {
		return nil, errors.Config("invalid form configuration", err)
	}
	return schema, nil
}

// Core builds the booking core from cfg
func Core(cfg *config.Config) (*engine.Core, error) {
	c, err := Catalog(cfg)
	if err != nil {
		return nil, err
	}
	schema, err := Schema(cfg)
	if err != nil {
		return nil, err
	}

	core, err := engine.New(schema, c)
	if err != nil {
		return nil, err
	}

	logging.Info("Booking core initialized",
		zap.String("catalog", catalogSource(cfg)),
		zap.String("phone_policy", string(schema.PhonePolicy())),
	)
	return core, nil
}

func catalogSource(cfg *config.Config) string {
	if cfg.Catalog.Path == "" {
		return "built-in"
	}
	return cfg.Catalog.Path
}
