package report

import "github.com/shopspring/decimal"

// Trend computes the percentage change from previous to current. A zero base is
// handled explicitly: new activity on an empty prior period reads as +100%, and
// two empty periods read as 0% (no change). The function is pure; callers
// decide what "previous" means.
func Trend(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		if current.GreaterThan(decimal.Zero) {
			return oneHundred
		}
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(oneHundred)
}
