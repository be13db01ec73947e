package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/pkg/auth"
	"github.com/baustelle-app/lager/pkg/httpx"
	pkgvalidator "github.com/baustelle-app/lager/pkg/validator"
)

// CreatePurchaseRequestRequest is the body of POST /purchase-requests.
type CreatePurchaseRequestRequest struct {
	ItemID    string           `json:"item_id"    validate:"required,uuid"`
	Quantity  *decimal.Decimal `json:"quantity"   validate:"required" swaggertype:"number" example:"40"`
	Reason    string           `json:"reason"     validate:"max=1000" example:"Fundament Haus B"`
	CreatedBy string           `json:"created_by" validate:"omitempty,uuid"`
} // @name CreatePurchaseRequestRequest

// UpdatePurchaseRequestStatusRequest is the body of PATCH /purchase-requests/{id}/status.
type UpdatePurchaseRequestStatusRequest struct {
	Status string `json:"status" validate:"required" example:"approved"`
} // @name UpdatePurchaseRequestStatusRequest

// PostPurchaseRequestHandler handles POST /purchase-requests.
type PostPurchaseRequestHandler struct{ Base }

func NewPostPurchaseRequestHandler(b Base) *PostPurchaseRequestHandler {
	return &PostPurchaseRequestHandler{Base: b}
}

// Execute opens a pending purchase request.
//
//	@Summary	Create purchase request
//	@Tags		purchase-requests
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreatePurchaseRequestRequest	true	"Request"
//	@Success	201		{object}	PurchaseRequestResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/purchase-requests [post]
func (h *PostPurchaseRequestHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreatePurchaseRequestRequest](w, r)
	if !ok {
		return
	}
	itemID, err := parseUUID("item_id", req.ItemID)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var createdBy *uuid.UUID
	if id, err := auth.OperatorIDFromCtx(r.Context()); err == nil {
		createdBy = &id
	} else if req.CreatedBy != "" {
		id, err := parseUUID("created_by", req.CreatedBy)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		createdBy = &id
	}

	pr, err := h.svc.PurchaseRequests.Create(r.Context(), itemID, *req.Quantity, req.Reason, createdBy)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toPurchaseRequestResponse(pr))
}

// ListPurchaseRequestsHandler handles GET /purchase-requests.
type ListPurchaseRequestsHandler struct{ Base }

func NewListPurchaseRequestsHandler(b Base) *ListPurchaseRequestsHandler {
	return &ListPurchaseRequestsHandler{Base: b}
}

// Execute lists purchase requests, newest first.
//
//	@Summary	List purchase requests
//	@Tags		purchase-requests
//	@Produce	json
//	@Param		status	query		string	false	"pending, approved, ordered, received or cancelled"
//	@Success	200		{array}		PurchaseRequestResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/purchase-requests [get]
func (h *ListPurchaseRequestsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	prs, err := h.svc.PurchaseRequests.List(r.Context(), queryString(r, "status"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]PurchaseRequestResponse, len(prs))
	for i, pr := range prs {
		out[i] = toPurchaseRequestResponse(pr)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// PatchPurchaseRequestStatusHandler handles PATCH /purchase-requests/{id}/status.
type PatchPurchaseRequestStatusHandler struct{ Base }

func NewPatchPurchaseRequestStatusHandler(b Base) *PatchPurchaseRequestStatusHandler {
	return &PatchPurchaseRequestStatusHandler{Base: b}
}

// Execute moves a purchase request to a new status.
//
//	@Summary	Update purchase request status
//	@Tags		purchase-requests
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Purchase request UUID"
//	@Param		request	body		UpdatePurchaseRequestStatusRequest	true	"New status"
//	@Success	200		{object}	PurchaseRequestResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/purchase-requests/{id}/status [patch]
func (h *PatchPurchaseRequestStatusHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	req, ok := pkgvalidator.ValidateRequest[UpdatePurchaseRequestStatusRequest](w, r)
	if !ok {
		return
	}
	pr, err := h.svc.PurchaseRequests.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toPurchaseRequestResponse(pr))
}
