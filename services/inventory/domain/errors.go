package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the inventory context wraps exactly
// one of these; match with errors.Is.
var (
	// ErrInvalidArgument indicates malformed input. Nothing was written.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientStock indicates an out transaction would drive the
	// balance below zero. Nothing was written.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrNotFound indicates a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates the balance kept changing underneath the ledger
	// and the retry budget ran out.
	ErrConflict = errors.New("conflict")

	// ErrAlreadyExists indicates a uniqueness constraint was hit.
	ErrAlreadyExists = errors.New("already exists")
)

var (
	ErrItemNotFound            = fmt.Errorf("item %w", ErrNotFound)
	ErrLocationNotFound        = fmt.Errorf("storage location %w", ErrNotFound)
	ErrTransactionNotFound     = fmt.Errorf("transaction %w", ErrNotFound)
	ErrBalanceNotFound         = fmt.Errorf("balance %w", ErrNotFound)
	ErrPurchaseRequestNotFound = fmt.Errorf("purchase request %w", ErrNotFound)

	ErrInvalidTransactionType = fmt.Errorf("%w: unknown transaction type", ErrInvalidArgument)
	ErrNegativeQuantity       = fmt.Errorf("%w: quantity must not be negative", ErrInvalidArgument)
	ErrInvalidStatus          = fmt.Errorf("%w: unknown purchase request status", ErrInvalidArgument)
	ErrInvalidItemName        = fmt.Errorf("%w: invalid item name", ErrInvalidArgument)
	ErrInvalidItemType        = fmt.Errorf("%w: item type must be material or maschine", ErrInvalidArgument)

	ErrBarcodeTaken            = fmt.Errorf("barcode %w", ErrAlreadyExists)
	ErrDuplicateIdempotencyKey = fmt.Errorf("idempotency key %w", ErrAlreadyExists)
	ErrIdempotencyKeyReused    = fmt.Errorf("%w: idempotency key was used for a different request", ErrAlreadyExists)
	ErrDuplicateReorder        = fmt.Errorf("reorder for event %w", ErrAlreadyExists)
)

// InsufficientStockError carries the numbers behind an ErrInsufficientStock.
type InsufficientStockError struct {
	Available string
	Requested string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: available %s, requested %s", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Invalid wraps ErrInvalidArgument with a field-specific message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
