// Package services holds the stateless stock rules of the inventory context.
// They operate on domain types only and never touch storage.
package services

import (
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

// ValidateQuantity rejects negative quantities and those the ledger cannot
// store exactly. Zero is allowed for every type; an adjust to zero empties
// a location.
func ValidateQuantity(q decimal.Decimal) error {
	if q.IsNegative() {
		return domain.ErrNegativeQuantity
	}
	return domain.CheckQuantityRange("quantity", q)
}

// NextQuantity computes the balance after applying a movement of q to
// current:
//
//	in, initial  current + q
//	out          current - q, ErrInsufficientStock when negative
//	adjust       q
func NextQuantity(t models.TransactionType, current, q decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateQuantity(q); err != nil {
		return decimal.Zero, err
	}
	switch t {
	case models.TransactionIn, models.TransactionInitial:
		next := current.Add(q)
		if err := domain.CheckQuantityRange("resulting balance", next); err != nil {
			return decimal.Zero, err
		}
		return next, nil
	case models.TransactionOut:
		next := current.Sub(q)
		if next.IsNegative() {
			return decimal.Zero, &domain.InsufficientStockError{
				Available: current.String(),
				Requested: q.String(),
			}
		}
		return next, nil
	case models.TransactionAdjust:
		return q, nil
	default:
		return decimal.Zero, domain.ErrInvalidTransactionType
	}
}

// CrossedReorderPoint reports whether a movement took an item's total stock
// from above minStock to at or below it. Items without a threshold never
// cross.
func CrossedReorderPoint(previousTotal, currentTotal, minStock decimal.Decimal) bool {
	if !minStock.IsPositive() {
		return false
	}
	return previousTotal.GreaterThan(minStock) && currentTotal.LessThanOrEqual(minStock)
}

// ReorderQuantity refills to twice the threshold.
func ReorderQuantity(currentTotal, minStock decimal.Decimal) decimal.Decimal {
	q := minStock.Mul(decimal.NewFromInt(2)).Sub(currentTotal)
	if !q.IsPositive() {
		return minStock
	}
	return q
}
