package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
)

// ItemType distinguishes consumable material from machines and equipment.
type ItemType string

const (
	ItemTypeMaterial ItemType = "material"
	ItemTypeMaschine ItemType = "maschine"
)

// ParseItemType accepts the two catalog kinds; empty defaults to material.
func ParseItemType(s string) (ItemType, error) {
	switch ItemType(s) {
	case "":
		return ItemTypeMaterial, nil
	case ItemTypeMaterial, ItemTypeMaschine:
		return ItemType(s), nil
	default:
		return "", domain.ErrInvalidItemType
	}
}

// Item is a catalog entry. Items are never deleted, only deactivated.
type Item struct {
	ID            uuid.UUID
	Name          ItemName
	Type          ItemType
	Unit          string
	Barcode       *string
	MinStockLevel decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
}

// NewItem builds an active Item with a fresh ID. An empty unit defaults to
// "Stk" and a blank barcode is stored as none.
func NewItem(name ItemName, typ ItemType, unit string, barcode *string, minStock decimal.Decimal) (*Item, error) {
	if minStock.IsNegative() {
		return nil, domain.Invalid("min_stock_level must not be negative")
	}
	if err := domain.CheckQuantityRange("min_stock_level", minStock); err != nil {
		return nil, err
	}
	unit = strings.TrimSpace(unit)
	if unit == "" {
		unit = "Stk"
	}
	if barcode != nil {
		code := strings.TrimSpace(*barcode)
		if code == "" {
			barcode = nil
		} else {
			barcode = &code
		}
	}
	return &Item{
		ID:            uuid.New(),
		Name:          name,
		Type:          typ,
		Unit:          unit,
		Barcode:       barcode,
		MinStockLevel: minStock,
		IsActive:      true,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
