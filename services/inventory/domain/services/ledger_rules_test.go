package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNextQuantity(t *testing.T) {
	tests := []struct {
		name    string
		typ     models.TransactionType
		current string
		q       string
		want    string
		wantErr error
	}{
		{"in adds", models.TransactionIn, "20", "5", "25", nil},
		{"initial adds", models.TransactionInitial, "3", "7.5", "10.5", nil},
		{"in zero", models.TransactionIn, "4", "0", "4", nil},
		{"out subtracts", models.TransactionOut, "25", "8", "17", nil},
		{"out to zero", models.TransactionOut, "8", "8", "0", nil},
		{"out below zero", models.TransactionOut, "2", "5", "", domain.ErrInsufficientStock},
		{"out on empty", models.TransactionOut, "0", "0.001", "", domain.ErrInsufficientStock},
		{"adjust sets", models.TransactionAdjust, "17", "15", "15", nil},
		{"adjust up", models.TransactionAdjust, "1", "40", "40", nil},
		{"adjust to zero", models.TransactionAdjust, "9", "0", "0", nil},
		{"negative quantity", models.TransactionIn, "0", "-1", "", domain.ErrInvalidArgument},
		{"negative adjust", models.TransactionAdjust, "5", "-1", "", domain.ErrInvalidArgument},
		{"unknown type", models.TransactionType("transfer"), "5", "1", "", domain.ErrInvalidTransactionType},
		{"three decimals", models.TransactionIn, "0", "0.125", "0.125", nil},
		{"trailing zeros are exact", models.TransactionIn, "0", "1.5000", "1.5", nil},
		{"four decimals", models.TransactionIn, "0", "0.0004", "", domain.ErrInvalidArgument},
		{"four decimals on out", models.TransactionOut, "5", "1.2345", "", domain.ErrInvalidArgument},
		{"largest storable", models.TransactionAdjust, "0", "99999999999.999", "99999999999.999", nil},
		{"too large", models.TransactionIn, "0", "100000000000", "", domain.ErrInvalidArgument},
		{"sum overflows column", models.TransactionIn, "99999999999", "1", "", domain.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextQuantity(tt.typ, d(tt.current), d(tt.q))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(d(tt.want)) {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestNextQuantity_InsufficientStockDetails(t *testing.T) {
	_, err := NextQuantity(models.TransactionOut, d("2"), d("5"))
	var ise *domain.InsufficientStockError
	if !errors.As(err, &ise) {
		t.Fatalf("expected *InsufficientStockError, got %T", err)
	}
	if ise.Available != "2" || ise.Requested != "5" {
		t.Errorf("unexpected details: %+v", ise)
	}
}

func TestCrossedReorderPoint(t *testing.T) {
	tests := []struct {
		name                   string
		previous, current, min string
		want                    bool
	}{
		{"crosses to below", "12", "8", "10", true},
		{"crosses to exactly", "12", "10", "10", true},
		{"stays above", "20", "11", "10", false},
		{"already below", "9", "5", "10", false},
		{"already at", "10", "4", "10", false},
		{"no threshold", "5", "0", "0", false},
		{"goes up", "5", "15", "10", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossedReorderPoint(d(tt.previous), d(tt.current), d(tt.min)); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReorderQuantity(t *testing.T) {
	if got := ReorderQuantity(d("8"), d("10")); !got.Equal(d("12")) {
		t.Errorf("got %s, want 12", got)
	}
	if got := ReorderQuantity(d("0"), d("2.5")); !got.Equal(d("5")) {
		t.Errorf("got %s, want 5", got)
	}
	if got := ReorderQuantity(d("30"), d("10")); !got.Equal(d("10")) {
		t.Errorf("overstocked: got %s, want 10", got)
	}
}
