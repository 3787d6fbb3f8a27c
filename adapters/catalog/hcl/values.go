// Package hcl - Safe CTY value conversion for catalog attributes
// Unknown, null or mistyped values are reported, never coerced.
package hcl

import (
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
)

// attrValue evaluates a literal attribute; catalog files take no variables
func attrValue(attr *hcl.Attribute) (cty.Value, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("%s: %s", attr.Name, diags.Error())
	}
	if !val.IsKnown() {
		return cty.NilVal, fmt.Errorf("%s: value is not known", attr.Name)
	}
	if val.IsNull() {
		return cty.NilVal, fmt.Errorf("%s: value is null", attr.Name)
	}
	return val, nil
}

func asString(attr *hcl.Attribute) (string, error) {
	val, err := attrValue(attr)
	if err != nil {
		return "", err
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("%s: expected string, got %s", attr.Name, val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

func asNumber(attr *hcl.Attribute) (*big.Float, error) {
	val, err := attrValue(attr)
	if err != nil {
		return nil, err
	}
	if val.Type() != cty.Number {
		return nil, fmt.Errorf("%s: expected number, got %s", attr.Name, val.Type().FriendlyName())
	}
	return val.AsBigFloat(), nil
}

// asWholeAmount reads a price; prices are whole currency units
func asWholeAmount(attr *hcl.Attribute) (int64, error) {
	f, err := asNumber(attr)
	if err != nil {
		return 0, err
	}
	n, acc := f.Int64()
	if acc != big.Exact {
		return 0, fmt.Errorf("%s: expected a whole amount, got %s", attr.Name, f.Text('f', -1))
	}
	return n, nil
}

// asDecimal reads a multiplier without going through float64
func asDecimal(attr *hcl.Attribute) (decimal.Decimal, error) {
	f, err := asNumber(attr)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(f.Text('f', -1))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", attr.Name, err)
	}
	return d, nil
}
