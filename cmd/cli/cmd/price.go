// Package cmd - price, quote and options commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"kitchhub/core/types"
	"kitchhub/internal/errors"
)

var (
	priceCity     string
	priceDuration string
	priceTier     string
)

// priceCmd prints the displayed price for a selection
var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Show the displayed price for a city and duration",
	Long: `Compute the price shown on the booking page: the tier price of the city
with the duration discount applied, rounded to the nearest euro.

Examples:
  kitchhub price --city paris --duration monthly
  kitchhub price --city lyon --duration annual --tier premium`,
	RunE: runPrice,
}

// quoteCmd prints every tier for a selection
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Show every tier's price for a city and duration",
	RunE:  runQuote,
}

// optionsCmd lists the selectable cities and durations
var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List selectable cities and durations",
	RunE:  runOptions,
}

func init() {
	for _, c := range []*cobra.Command{priceCmd, quoteCmd} {
		c.Flags().StringVarP(&priceCity, "city", "c", "paris", "city key")
		c.Flags().StringVarP(&priceDuration, "duration", "d", string(types.PeriodMonthly), "billing period key")
	}
	priceCmd.Flags().StringVarP(&priceTier, "tier", "t", string(types.TierStarter), "offer tier (starter, pro, premium)")

	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(optionsCmd)
}

// checkSelection keeps flag input inside the catalog's closed option sets
func checkSelection(hasLocation, hasPeriod func(string) bool) error {
	if !hasLocation(priceCity) {
		return errors.InvalidSelection("location", priceCity)
	}
	if !hasPeriod(priceDuration) {
		return errors.InvalidSelection("period", priceDuration)
	}
	return nil
}

func runPrice(cmd *cobra.Command, args []string) error {
	core, err := loadCore()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}

	cat := core.Calculator().Catalog()
	if err := checkSelection(cat.HasLocation, cat.HasPeriod); err != nil {
		return err
	}
	tier := types.Tier(priceTier)
	if !tier.IsValid() {
		return errors.InvalidSelection("tier", priceTier)
	}

	result, err := core.Calculator().ComputeTier(types.Location(priceCity), types.Period(priceDuration), tier)
	if err != nil {
		return fmt.Errorf("failed to compute price: %w", err)
	}
	return f.Price(cmd.OutOrStdout(), result)
}

func runQuote(cmd *cobra.Command, args []string) error {
	core, err := loadCore()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}

	cat := core.Calculator().Catalog()
	if err := checkSelection(cat.HasLocation, cat.HasPeriod); err != nil {
		return err
	}

	quote, err := core.Calculator().Quote(types.Location(priceCity), types.Period(priceDuration))
	if err != nil {
		return fmt.Errorf("failed to compute quote: %w", err)
	}
	return f.Quote(cmd.OutOrStdout(), quote)
}

func runOptions(cmd *cobra.Command, args []string) error {
	core, err := loadCore()
	if err != nil {
		return err
	}
	f, err := formatter()
	if err != nil {
		return err
	}

	locations, periods := core.Calculator().Options()
	return f.Options(cmd.OutOrStdout(), locations, periods)
}
