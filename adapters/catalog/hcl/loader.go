// Package hcl loads a price catalog from an HCL file.
package hcl

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"kitchhub/core/catalog"
	"kitchhub/core/types"
	"kitchhub/internal/errors"
	"kitchhub/internal/logging"
)

var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "currency"},
		{Name: "caption_prefix"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "location", LabelNames: []string{"key"}},
		{Type: "period", LabelNames: []string{"key"}},
	},
}

var locationSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "label"},
		{Name: "starter", Required: true},
		{Name: "pro", Required: true},
		{Name: "premium", Required: true},
	},
}

var periodSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "label"},
		{Name: "multiplier", Required: true},
	},
}

// Loader parses catalog files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new catalog loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
	}
}

// LoadFile reads and parses the catalog at path
func (l *Loader) LoadFile(path string) (*catalog.Catalog, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Config("failed to read catalog file", err).WithContext("path", path)
	}
	return l.Parse(src, path)
}

// Parse builds a catalog from HCL source. Blocks keep their file order,
// which is the order options are offered in.
func (l *Loader) Parse(src []byte, filename string) (*catalog.Catalog, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("failed to parse catalog", diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid catalog structure", diags)
	}

	currency, err := optionalString(content.Attributes, "currency")
	if err != nil {
		return nil, errors.Parsing("invalid catalog attribute", err)
	}
	prefix, err := optionalString(content.Attributes, "caption_prefix")
	if err != nil {
		return nil, errors.Parsing("invalid catalog attribute", err)
	}

	c := catalog.New(currency, prefix)
	for _, block := range content.Blocks {
		switch block.Type {
		case "location":
			entry, err := parseLocation(block)
			if err != nil {
				return nil, errors.Parsing(blockRef(block), err)
			}
			if err := c.AddLocation(entry); err != nil {
				return nil, errors.Parsing(blockRef(block), err)
			}
		case "period":
			entry, err := parsePeriod(block)
			if err != nil {
				return nil, errors.Parsing(blockRef(block), err)
			}
			if err := c.AddPeriod(entry); err != nil {
				return nil, errors.Parsing(blockRef(block), err)
			}
		}
	}

	logging.Debug("Catalog loaded",
		zap.String("file", filename),
		zap.Int("locations", len(c.Locations())),
		zap.Int("periods", len(c.Periods())),
	)
	return c, nil
}

func parseLocation(block *hcl.Block) (catalog.LocationEntry, error) {
	entry := catalog.LocationEntry{Key: types.Location(block.Labels[0])}

	content, diags := block.Body.Content(locationSchema)
	if diags.HasErrors() {
		return entry, diags
	}

	label, err := optionalString(content.Attributes, "label")
	if err != nil {
		return entry, err
	}
	entry.Label = label

	if entry.Prices.Starter, err = asWholeAmount(content.Attributes["starter"]); err != nil {
		return entry, err
	}
	if entry.Prices.Pro, err = asWholeAmount(content.Attributes["pro"]); err != nil {
		return entry, err
	}
	if entry.Prices.Premium, err = asWholeAmount(content.Attributes["premium"]); err != nil {
		return entry, err
	}
	return entry, nil
}

func parsePeriod(block *hcl.Block) (catalog.PeriodEntry, error) {
	entry := catalog.PeriodEntry{Key: types.Period(block.Labels[0])}

	content, diags := block.Body.Content(periodSchema)
	if diags.HasErrors() {
		return entry, diags
	}

	label, err := optionalString(content.Attributes, "label")
	if err != nil {
		return entry, err
	}
	entry.Label = label

	if entry.Multiplier, err = asDecimal(content.Attributes["multiplier"]); err != nil {
		return entry, err
	}
	return entry, nil
}

func optionalString(attrs hcl.Attributes, name string) (string, error) {
	attr, ok := attrs[name]
	if !ok {
		return "", nil
	}
	return asString(attr)
}

func blockRef(block *hcl.Block) string {
	return fmt.Sprintf("%s %q (line %d)", block.Type, block.Labels[0], block.DefRange.Start.Line)
}
