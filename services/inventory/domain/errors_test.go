package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestDerivedErrors_MatchTheirKind(t *testing.T) {
	tests := []struct {
		err  error
		kind error
	}{
		{ErrItemNotFound, ErrNotFound},
		{ErrLocationNotFound, ErrNotFound},
		{ErrTransactionNotFound, ErrNotFound},
		{ErrBalanceNotFound, ErrNotFound},
		{ErrPurchaseRequestNotFound, ErrNotFound},
		{ErrInvalidTransactionType, ErrInvalidArgument},
		{ErrNegativeQuantity, ErrInvalidArgument},
		{ErrInvalidStatus, ErrInvalidArgument},
		{ErrInvalidItemName, ErrInvalidArgument},
		{ErrInvalidItemType, ErrInvalidArgument},
		{ErrBarcodeTaken, ErrAlreadyExists},
		{ErrDuplicateIdempotencyKey, ErrAlreadyExists},
		{ErrIdempotencyKeyReused, ErrAlreadyExists},
		{ErrDuplicateReorder, ErrAlreadyExists},
		{&InsufficientStockError{Available: "2", Requested: "5"}, ErrInsufficientStock},
		{Invalid("item_id is required"), ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if !errors.Is(tt.err, tt.kind) {
				t.Fatalf("%v does not match %v", tt.err, tt.kind)
			}
			wrapped := fmt.Errorf("record transaction: %w", tt.err)
			if !errors.Is(wrapped, tt.kind) {
				t.Fatalf("wrapped %v does not match %v", tt.err, tt.kind)
			}
		})
	}
}

func TestErrorKinds_AreDistinct(t *testing.T) {
	kinds := []error{ErrInvalidArgument, ErrInsufficientStock, ErrNotFound, ErrConflict, ErrAlreadyExists}
	for i, a := range kinds {
		for j, b := range kinds {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}

func TestMessages(t *testing.T) {
	if got := ErrItemNotFound.Error(); got != "item not found" {
		t.Errorf("got %q", got)
	}
	if got := (&InsufficientStockError{Available: "2", Requested: "5"}).Error(); got != "insufficient stock: available 2, requested 5" {
		t.Errorf("got %q", got)
	}
	if got := Invalid("limit must be at most %d", 500).Error(); got != "invalid argument: limit must be at most 500" {
		t.Errorf("got %q", got)
	}
}
