package pricing

import "github.com/shopspring/decimal"

// ApplyMultiplier returns base × multiplier rounded to the nearest whole unit,
// halves rounded up. Decimal arithmetic keeps 590 × 0.85 at exactly 501.5.
func ApplyMultiplier(base int64, multiplier decimal.Decimal) int64 {
	// Round is half away from zero, which is half-up for positive prices.
	return decimal.NewFromInt(base).Mul(multiplier).Round(0).IntPart()
}
