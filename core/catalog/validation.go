// Package catalog - Catalog validation
// Ensures catalog integrity before any price is computed from it.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// LocationRule is a validation rule for a location row
type LocationRule func(*LocationEntry) error

// PeriodRule is a validation rule for a period row
type PeriodRule func(*PeriodEntry) error

// DefaultLocationRules returns the standard location rules
func DefaultLocationRules() []LocationRule {
	return []LocationRule{
		validatePositivePrices,
		validateTierOrdering,
	}
}

// DefaultPeriodRules returns the standard period rules
func DefaultPeriodRules() []PeriodRule {
	return []PeriodRule{
		validateMultiplierRange,
	}
}

// Validate checks the catalog against the default rules
func (c *Catalog) Validate() []error {
	return c.ValidateWith(DefaultLocationRules(), DefaultPeriodRules())
}

// ValidateWith checks the catalog against the given rules
func (c *Catalog) ValidateWith(locationRules []LocationRule, periodRules []PeriodRule) []error {
	var errors []error

	if len(c.locations) == 0 {
		errors = append(errors, fmt.Errorf("catalog has no locations"))
	}
	if len(c.periods) == 0 {
		errors = append(errors, fmt.Errorf("catalog has no periods"))
	}

	for _, entry := range c.locations {
		for _, rule := range locationRules {
			if err := rule(entry); err != nil {
				errors = append(errors, fmt.Errorf("location %s: %w", entry.Key, err))
			}
		}
	}
	for _, entry := range c.periods {
		for _, rule := range periodRules {
			if err := rule(entry); err != nil {
				errors = append(errors, fmt.Errorf("period %s: %w", entry.Key, err))
			}
		}
	}

	return errors
}

// validatePositivePrices ensures every tier has a positive price
func validatePositivePrices(e *LocationEntry) error {
	if e.Prices.Starter <= 0 || e.Prices.Pro <= 0 || e.Prices.Premium <= 0 {
		return fmt.Errorf("tier prices must be positive, got %+v", e.Prices)
	}
	return nil
}

// validateTierOrdering ensures higher tiers are never cheaper
func validateTierOrdering(e *LocationEntry) error {
	if e.Prices.Starter > e.Prices.Pro || e.Prices.Pro > e.Prices.Premium {
		return fmt.Errorf("tier prices must not decrease from starter to premium, got %+v", e.Prices)
	}
	return nil
}

// validateMultiplierRange ensures the multiplier lies in (0,1]
func validateMultiplierRange(e *PeriodEntry) error {
	if !e.Multiplier.IsPositive() || e.Multiplier.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("multiplier must be in (0,1], got %s", e.Multiplier)
	}
	return nil
}
