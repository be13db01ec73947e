package domain

import "github.com/shopspring/decimal"

// Quantities are stored as NUMERIC(14,3).
const QuantityScale = 3

// MaxQuantity is the first value the quantity columns cannot hold.
var MaxQuantity = decimal.New(1, 14-QuantityScale)

// CheckQuantityRange rejects values the quantity columns would round or
// overflow. Sign is the caller's concern.
func CheckQuantityRange(field string, q decimal.Decimal) error {
	if !q.Equal(q.Truncate(QuantityScale)) {
		return Invalid("%s allows at most %d decimal places", field, QuantityScale)
	}
	if q.Abs().GreaterThanOrEqual(MaxQuantity) {
		return Invalid("%s must be less than %s", field, MaxQuantity.String())
	}
	return nil
}
