package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

// TransactionResponse is one ledger entry.
type TransactionResponse struct {
	ID              uuid.UUID       `json:"id"               example:"7f1c2a7e-6b0e-4a53-9d3f-0c1f4f0b8a11"`
	ItemID          uuid.UUID       `json:"item_id"`
	LocationID      uuid.UUID       `json:"location_id"`
	TransactionType string          `json:"transaction_type" example:"out"`
	Quantity        decimal.Decimal `json:"quantity"         swaggertype:"number" example:"30"`
	BeforeQuantity  decimal.Decimal `json:"before_quantity"  swaggertype:"number" example:"100"`
	AfterQuantity   decimal.Decimal `json:"after_quantity"   swaggertype:"number" example:"70"`
	OperatorID      uuid.UUID       `json:"operator_id"`
	Notes           *string         `json:"notes,omitempty"`
	ReferenceType   *string         `json:"reference_type,omitempty" example:"delivery_note"`
	ReferenceID     *uuid.UUID      `json:"reference_id,omitempty"`
	IdempotencyKey  *string         `json:"idempotency_key,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
} // @name TransactionResponse

func toTransactionResponse(t *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:              t.ID,
		ItemID:          t.ItemID,
		LocationID:      t.LocationID,
		TransactionType: string(t.Type),
		Quantity:        t.Quantity,
		BeforeQuantity:  t.BeforeQuantity,
		AfterQuantity:   t.AfterQuantity,
		OperatorID:      t.OperatorID,
		Notes:           t.Notes,
		IdempotencyKey:  t.IdempotencyKey,
		CreatedAt:       t.CreatedAt,
	}
	if t.Reference != nil {
		typ, id := t.Reference.Type, t.Reference.ID
		resp.ReferenceType = &typ
		resp.ReferenceID = &id
	}
	return resp
}

func toTransactionResponses(txns []*models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		out[i] = toTransactionResponse(t)
	}
	return out
}

// BalanceResponse is the stock of one item at one location.
type BalanceResponse struct {
	ItemID       uuid.UUID       `json:"item_id"`
	ItemName     string          `json:"item_name"     example:"Schraube M8"`
	Unit         string          `json:"unit"          example:"Stk"`
	LocationID   uuid.UUID       `json:"location_id"`
	LocationName string          `json:"location_name" example:"Regal A"`
	Quantity     decimal.Decimal `json:"quantity"      swaggertype:"number" example:"70"`
	Version      int64           `json:"version"       example:"3"`
	UpdatedAt    time.Time       `json:"updated_at"`
} // @name BalanceResponse

func toBalanceResponses(rows []*models.BalanceView) []BalanceResponse {
	out := make([]BalanceResponse, len(rows))
	for i, b := range rows {
		out[i] = BalanceResponse{
			ItemID:       b.ItemID,
			ItemName:     b.ItemName,
			Unit:         b.Unit,
			LocationID:   b.LocationID,
			LocationName: b.LocationName,
			Quantity:     b.Quantity,
			Version:      b.Version,
			UpdatedAt:    b.UpdatedAt,
		}
	}
	return out
}

// SummaryResponse aggregates one item across all locations.
type SummaryResponse struct {
	ItemID        uuid.UUID       `json:"item_id"`
	ItemName      string          `json:"item_name"       example:"Schraube M8"`
	ItemType      string          `json:"item_type"       example:"material"`
	Unit          string          `json:"unit"            example:"Stk"`
	TotalQuantity decimal.Decimal `json:"total_quantity"  swaggertype:"number" example:"120"`
	LocationCount int             `json:"location_count"  example:"2"`
	MinStockLevel decimal.Decimal `json:"min_stock_level" swaggertype:"number" example:"50"`
	IsLowStock    bool            `json:"is_low_stock"`
} // @name SummaryResponse

func toSummaryResponses(rows []*models.StockSummary) []SummaryResponse {
	out := make([]SummaryResponse, len(rows))
	for i, s := range rows {
		out[i] = SummaryResponse{
			ItemID:        s.ItemID,
			ItemName:      s.ItemName,
			ItemType:      string(s.Type),
			Unit:          s.Unit,
			TotalQuantity: s.TotalQuantity,
			LocationCount: s.LocationCount,
			MinStockLevel: s.MinStockLevel,
			IsLowStock:    s.IsLow(),
		}
	}
	return out
}

// ItemResponse is a catalog item.
type ItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"            example:"Schraube M8"`
	ItemType      string          `json:"item_type"       example:"material"`
	Unit          string          `json:"unit"            example:"Stk"`
	Barcode       *string         `json:"barcode,omitempty" example:"4006381333931"`
	MinStockLevel decimal.Decimal `json:"min_stock_level" swaggertype:"number" example:"50"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
} // @name ItemResponse

func toItemResponse(i *models.Item) ItemResponse {
	return ItemResponse{
		ID:            i.ID,
		Name:          i.Name.String(),
		ItemType:      string(i.Type),
		Unit:          i.Unit,
		Barcode:       i.Barcode,
		MinStockLevel: i.MinStockLevel,
		IsActive:      i.IsActive,
		CreatedAt:     i.CreatedAt,
	}
}

// LocationResponse is a storage location.
type LocationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"                  example:"Container 1"`
	Description *string   `json:"description,omitempty"`
	Zone        *string   `json:"zone,omitempty"        example:"Nord"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
} // @name LocationResponse

func toLocationResponse(l *models.StorageLocation) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Zone:        l.Zone,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt,
	}
}

// PurchaseRequestResponse is a request to order more of an item.
type PurchaseRequestResponse struct {
	ID            uuid.UUID       `json:"id"`
	RequestNumber string          `json:"request_number"  example:"PR-20261016-0001"`
	ItemID        uuid.UUID       `json:"item_id"`
	Quantity      decimal.Decimal `json:"quantity"        swaggertype:"number" example:"40"`
	Reason        string          `json:"reason"          example:"automatic reorder"`
	Status        string          `json:"status"          example:"pending"`
	CreatedBy     *uuid.UUID      `json:"created_by,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
} // @name PurchaseRequestResponse

func toPurchaseRequestResponse(p *models.PurchaseRequest) PurchaseRequestResponse {
	return PurchaseRequestResponse{
		ID:            p.ID,
		RequestNumber: p.RequestNumber,
		ItemID:        p.ItemID,
		Quantity:      p.Quantity,
		Reason:        p.Reason,
		Status:        string(p.Status),
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
