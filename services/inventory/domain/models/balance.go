package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Balance is the on-hand quantity of one item at one location.
//
// Version starts at 1 when the row is created and increases by one on every
// committed transaction. Writers compare it to detect concurrent updates.
type Balance struct {
	ItemID     uuid.UUID
	LocationID uuid.UUID
	Quantity   decimal.Decimal
	Version    int64
	UpdatedAt  time.Time
}

// BalanceView is a Balance joined with display names.
type BalanceView struct {
	Balance
	ItemName     string
	Unit         string
	LocationName string
}

// StockSummary aggregates one item across all locations.
type StockSummary struct {
	ItemID        uuid.UUID
	ItemName      string
	Type          ItemType
	Unit          string
	TotalQuantity decimal.Decimal
	LocationCount int
	MinStockLevel decimal.Decimal
}

// IsLow reports whether the item is at or below its reorder threshold.
// Items without a threshold are never low.
func (s StockSummary) IsLow() bool {
	return s.MinStockLevel.IsPositive() && s.TotalQuantity.LessThanOrEqual(s.MinStockLevel)
}

// StockAtLocation is one row of a barcode lookup.
type StockAtLocation struct {
	LocationID   uuid.UUID
	LocationName string
	Quantity     decimal.Decimal
}
