// Package engine provides the explicit initialization of the booking core.
// CLI and HTTP surfaces are thin wrappers around what it returns.
package engine

import (
	"fmt"
	"strings"

	"kitchhub/core/catalog"
	"kitchhub/core/form"
	"kitchhub/core/pricing"
	"kitchhub/internal/errors"
)

// Initialize validates the catalog and builds the two core components.
// It is called once by the hosting surface when it is ready; nothing runs
// implicitly on load.
func Initialize(schema *form.Schema, c *catalog.Catalog) (*form.Engine, *pricing.Calculator, error) {
	core, err := New(schema, c)
	if err != nil {
		return nil, nil, err
	}
	return core.NewForm(), core.Calculator(), nil
}

// Core holds the process-wide constants: schema, catalog and calculator.
// Surfaces serving several form instances create one engine per instance.
type Core struct {
	schema     *form.Schema
	calculator *pricing.Calculator
}

// New validates its inputs and returns a Core
func New(schema *form.Schema, c *catalog.Catalog) (*Core, error) {
	if schema == nil {
		return nil, errors.Config("form schema is required", nil)
	}
	if c == nil {
		return nil, errors.Config("catalog is required", nil)
	}
	if errs := c.Validate(); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return nil, errors.Config("invalid catalog", fmt.Errorf("%s", strings.Join(msgs, "; ")))
	}

	return &Core{
		schema:     schema,
		calculator: pricing.NewCalculator(c),
	}, nil
}

// Calculator returns the shared price calculator
func (c *Core) Calculator() *pricing.Calculator {
	return c.calculator
}

// Schema returns the shared form schema
func (c *Core) Schema() *form.Schema {
	return c.schema
}

// NewForm returns a fresh validation engine for one form instance
func (c *Core) NewForm() *form.Engine {
	return form.NewEngine(c.schema)
}
