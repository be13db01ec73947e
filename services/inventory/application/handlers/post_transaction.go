package handlers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/pkg/httpx"
	pkgvalidator "github.com/baustelle-app/lager/pkg/validator"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/models"
)

// IdempotencyKeyHeader lets a client retry a movement safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// RecordTransactionRequest is the body of POST /inventory/transactions.
type RecordTransactionRequest struct {
	ItemID          string           `json:"item_id"          validate:"required,uuid"           example:"123e4567-e89b-12d3-a456-426614174000"`
	LocationID      string           `json:"location_id"      validate:"required,uuid"           example:"550e8400-e29b-41d4-a716-446655440000"`
	TransactionType string           `json:"transaction_type" validate:"required"                example:"out"`
	Quantity        *decimal.Decimal `json:"quantity"         validate:"required"                swaggertype:"number" example:"30"`
	OperatorID      string           `json:"operator_id"      validate:"omitempty,uuid"`
	Notes           *string          `json:"notes"            validate:"omitempty,max=2000"`
	ReferenceType   *string          `json:"reference_type"   validate:"omitempty,max=50"        example:"delivery_note"`
	ReferenceID     string           `json:"reference_id"     validate:"omitempty,uuid"`
} // @name RecordTransactionRequest

// PostTransactionHandler handles POST /inventory/transactions.
type PostTransactionHandler struct{ Base }

func NewPostTransactionHandler(b Base) *PostTransactionHandler {
	return &PostTransactionHandler{Base: b}
}

// Execute records one stock movement.
//
//	@Summary		Record transaction
//	@Description	Applies an in, out, adjust or initial movement to one item at one location. A repeated Idempotency-Key returns the original transaction.
//	@Tags			inventory
//	@Accept			json
//	@Produce		json
//	@Param			Idempotency-Key	header		string						false	"Client-chosen key for safe retries"
//	@Param			request			body		RecordTransactionRequest	true	"Movement"
//	@Success		200				{object}	TransactionResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Failure		409				{object}	ErrorResponse
//	@Router			/inventory/transactions [post]
func (h *PostTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[RecordTransactionRequest](w, r)
	if !ok {
		return
	}

	in, err := h.toRecordRequest(r, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	txn, err := h.svc.Ledger.RecordTransaction(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTransactionResponse(txn))
}

func (h *PostTransactionHandler) toRecordRequest(r *http.Request, req *RecordTransactionRequest) (appsvcs.RecordRequest, error) {
	var in appsvcs.RecordRequest
	var err error
	if in.ItemID, err = parseUUID("item_id", req.ItemID); err != nil {
		return in, err
	}
	if in.LocationID, err = parseUUID("location_id", req.LocationID); err != nil {
		return in, err
	}
	if in.OperatorID, err = operatorID(r, req.OperatorID); err != nil {
		return in, err
	}
	if in.Type, err = models.ParseTransactionType(req.TransactionType); err != nil {
		return in, err
	}
	in.Quantity = *req.Quantity
	in.Notes = req.Notes
	refType := ""
	if req.ReferenceType != nil {
		refType = strings.TrimSpace(*req.ReferenceType)
	}
	hasRefID := strings.TrimSpace(req.ReferenceID) != ""
	switch {
	case refType != "" && hasRefID:
		refID, err := parseUUID("reference_id", req.ReferenceID)
		if err != nil {
			return in, err
		}
		in.Reference = &models.Reference{Type: refType, ID: refID}
	case refType != "" || hasRefID:
		return in, domain.Invalid("reference_type and reference_id go together")
	}
	in.IdempotencyKey = strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
	return in, nil
}
