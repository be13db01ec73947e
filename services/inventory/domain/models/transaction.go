package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
)

// TransactionType is the kind of stock movement.
type TransactionType string

const (
	TransactionIn      TransactionType = "in"
	TransactionOut     TransactionType = "out"
	TransactionAdjust  TransactionType = "adjust"
	TransactionInitial TransactionType = "initial"
)

// ParseTransactionType returns ErrInvalidTransactionType for anything but
// the four known kinds.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", domain.ErrInvalidTransactionType
	}
	return t, nil
}

func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionAdjust, TransactionInitial:
		return true
	}
	return false
}

// Reference links a transaction to the document that caused it, for
// example a delivery note or a purchase request.
type Reference struct {
	Type string
	ID   uuid.UUID
}

// Transaction is one immutable ledger entry. AfterQuantity is the balance
// the entry committed; BeforeQuantity is the balance it replaced.
type Transaction struct {
	ID             uuid.UUID
	ItemID         uuid.UUID
	LocationID     uuid.UUID
	Type           TransactionType
	Quantity       decimal.Decimal
	BeforeQuantity decimal.Decimal
	AfterQuantity  decimal.Decimal
	OperatorID     uuid.UUID
	Notes          *string
	Reference      *Reference
	IdempotencyKey *string
	CreatedAt      time.Time

	// ItemTotalAfter is the item's stock across all locations once this
	// entry committed. The ledger fills it in on commit; it is not read
	// back with the log.
	ItemTotalAfter decimal.Decimal
}

// Delta is the signed change this entry applied to the balance.
func (t *Transaction) Delta() decimal.Decimal {
	return t.AfterQuantity.Sub(t.BeforeQuantity)
}

// ItemTotalBefore is the item-wide stock this entry started from.
func (t *Transaction) ItemTotalBefore() decimal.Decimal {
	return t.ItemTotalAfter.Sub(t.Delta())
}

// SameRequest reports whether other asks for the same movement. It is used
// to tell an honest client retry from a reused idempotency key.
func (t *Transaction) SameRequest(other *Transaction) bool {
	return t.ItemID == other.ItemID &&
		t.LocationID == other.LocationID &&
		t.Type == other.Type &&
		t.Quantity.Equal(other.Quantity)
}
