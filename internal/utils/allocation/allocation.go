package allocation

import "github.com/shopspring/decimal"

// Shares are stored and re-summed at a fixed 2-decimal precision; the
// remainder-to-last-child rule in the spread engine depends on every
// non-remainder share passing through Round2 before use.

// Round2 rounds a value to the grid's 2-decimal precision.
func Round2(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// EvenRatios returns n equal apportionment ratios of 1/n.
func EvenRatios(n int) []decimal.Decimal {
	d := decimal.NewFromInt(int64(n))
	ratios := make([]decimal.Decimal, n)
	for i := range ratios {
		ratios[i] = decimal.NewFromInt(1).Div(d)
	}
	return ratios
}

// Ratios returns each value's share of the values' total, or nil when the
// total is zero (callers fall back to EvenRatios).
func Ratios(values []decimal.Decimal) []decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	if total.IsZero() {
		return nil
	}
	ratios := make([]decimal.Decimal, len(values))
	for i, v := range values {
		ratios[i] = v.Div(total)
	}
	return ratios
}
