package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
)

func TestNewItemName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ItemName
		wantErr bool
	}{
		{"plain", "Schraube M8", "Schraube M8", false},
		{"trimmed", "  Rüttelplatte ", "Rüttelplatte", false},
		{"max length", strings.Repeat("a", 255), ItemName(strings.Repeat("a", 255)), false},
		{"empty", "", "", true},
		{"only spaces", "   ", "", true},
		{"too long", strings.Repeat("a", 256), "", true},
		{"control char", "bolt\x00", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewItemName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidItemName) {
					t.Fatalf("expected ErrInvalidItemName, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseItemType(t *testing.T) {
	if got, err := ParseItemType(""); err != nil || got != ItemTypeMaterial {
		t.Errorf("empty: got %q, %v", got, err)
	}
	if got, err := ParseItemType("maschine"); err != nil || got != ItemTypeMaschine {
		t.Errorf("maschine: got %q, %v", got, err)
	}
	if _, err := ParseItemType("tool"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("tool: expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewItem(t *testing.T) {
	blank := "  "
	code := " 4006381333931 "

	item, err := NewItem("Schraube M8", ItemTypeMaterial, "", &code, decimal.NewFromInt(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID == uuid.Nil {
		t.Error("ID must be generated")
	}
	if !item.IsActive {
		t.Error("new items are active")
	}
	if item.Unit != "Stk" {
		t.Errorf("unit default: got %q", item.Unit)
	}
	if item.Barcode == nil || *item.Barcode != "4006381333931" {
		t.Errorf("barcode must be trimmed, got %v", item.Barcode)
	}
	if item.CreatedAt.IsZero() {
		t.Error("CreatedAt must be set")
	}

	item, err = NewItem("Bagger", ItemTypeMaschine, "Stk", &blank, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.Barcode != nil {
		t.Errorf("blank barcode must be dropped, got %q", *item.Barcode)
	}

	if _, err := NewItem("Sand", ItemTypeMaterial, "t", nil, decimal.NewFromInt(-1)); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("negative min stock: expected ErrInvalidArgument, got %v", err)
	}
	for _, min := range []string{"0.0005", "100000000000"} {
		if _, err := NewItem("Sand", ItemTypeMaterial, "t", nil, decimal.RequireFromString(min)); !errors.Is(err, domain.ErrInvalidArgument) {
			t.Errorf("min stock %s: expected ErrInvalidArgument, got %v", min, err)
		}
	}
}

func TestNewStorageLocation(t *testing.T) {
	zone := "Nord"
	loc, err := NewStorageLocation(" Container 1 ", nil, &zone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.Name != "Container 1" || !loc.IsActive || loc.ID == uuid.Nil {
		t.Errorf("unexpected location: %+v", loc)
	}

	if _, err := NewStorageLocation(" ", nil, nil); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestStockSummary_IsLow(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		minStock int64
		want     bool
	}{
		{"above threshold", 11, 10, false},
		{"at threshold", 10, 10, true},
		{"below threshold", 3, 10, true},
		{"no threshold", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StockSummary{TotalQuantity: decimal.NewFromInt(tt.total), MinStockLevel: decimal.NewFromInt(tt.minStock)}
			if got := s.IsLow(); got != tt.want {
				t.Errorf("IsLow() = %v, want %v", got, tt.want)
			}
		})
	}
}
