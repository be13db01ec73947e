package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/services/inventory/domain"
)

// PurchaseRequestStatus tracks a request from creation to delivery.
type PurchaseRequestStatus string

const (
	PurchaseRequestPending   PurchaseRequestStatus = "pending"
	PurchaseRequestApproved  PurchaseRequestStatus = "approved"
	PurchaseRequestOrdered   PurchaseRequestStatus = "ordered"
	PurchaseRequestReceived  PurchaseRequestStatus = "received"
	PurchaseRequestCancelled PurchaseRequestStatus = "cancelled"
)

func ParsePurchaseRequestStatus(s string) (PurchaseRequestStatus, error) {
	switch st := PurchaseRequestStatus(s); st {
	case PurchaseRequestPending, PurchaseRequestApproved, PurchaseRequestOrdered,
		PurchaseRequestReceived, PurchaseRequestCancelled:
		return st, nil
	}
	return "", domain.ErrInvalidStatus
}

// ReasonAutomaticReorder marks requests opened by the reorder worker.
const ReasonAutomaticReorder = "automatic reorder"

// PurchaseRequest asks purchasing to order more of an item.
// RequestNumber is assigned by the repository on insert.
type PurchaseRequest struct {
	ID            uuid.UUID
	RequestNumber string
	ItemID        uuid.UUID
	Quantity      decimal.Decimal
	Reason        string
	Status        PurchaseRequestStatus
	CreatedBy     *uuid.UUID
	SourceEventID *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPurchaseRequest builds a pending request. createdBy is nil for
// requests opened by the system.
func NewPurchaseRequest(itemID uuid.UUID, quantity decimal.Decimal, reason string, createdBy *uuid.UUID) (*PurchaseRequest, error) {
	if itemID == uuid.Nil {
		return nil, domain.Invalid("item_id is required")
	}
	if !quantity.IsPositive() {
		return nil, domain.Invalid("quantity must be greater than zero")
	}
	if err := domain.CheckQuantityRange("quantity", quantity); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &PurchaseRequest{
		ID:        uuid.New(),
		ItemID:    itemID,
		Quantity:  quantity,
		Reason:    strings.TrimSpace(reason),
		Status:    PurchaseRequestPending,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// FormatRequestNumber renders PR-YYYYMMDD-NNNN from the creation date and a
// sequence value. Sequences past 9999 widen rather than wrap.
func FormatRequestNumber(at time.Time, seq int64) string {
	return fmt.Sprintf("PR-%s-%04d", at.UTC().Format("20060102"), seq)
}
