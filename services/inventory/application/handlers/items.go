package handlers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/pkg/httpx"
	pkgvalidator "github.com/baustelle-app/lager/pkg/validator"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
)

// CreateItemRequest is the body of POST /items.
type CreateItemRequest struct {
	Name          string           `json:"name"            validate:"required,max=255"                  example:"Schraube M8"`
	ItemType      string           `json:"item_type"       validate:"omitempty,oneof=material maschine" example:"material"`
	Unit          string           `json:"unit"            validate:"max=20"                            example:"Stk"`
	Barcode       *string          `json:"barcode"         validate:"omitempty,max=100"                 example:"4006381333931"`
	MinStockLevel *decimal.Decimal `json:"min_stock_level" swaggertype:"number" example:"50"`
} // @name CreateItemRequest

// PostItemHandler handles POST /items.
type PostItemHandler struct{ Base }

func NewPostItemHandler(b Base) *PostItemHandler { return &PostItemHandler{Base: b} }

// Execute creates a catalog item.
//
//	@Summary	Create item
//	@Tags		items
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateItemRequest	true	"Item"
//	@Success	201		{object}	ItemResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateItemRequest](w, r)
	if !ok {
		return
	}
	minStock := decimal.Zero
	if req.MinStockLevel != nil {
		minStock = *req.MinStockLevel
	}
	item, err := h.svc.Catalog.CreateItem(r.Context(), appsvcs.CreateItemInput{
		Name:          req.Name,
		Type:          req.ItemType,
		Unit:          req.Unit,
		Barcode:       req.Barcode,
		MinStockLevel: minStock,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toItemResponse(item))
}

// ListItemsHandler handles GET /items.
type ListItemsHandler struct{ Base }

func NewListItemsHandler(b Base) *ListItemsHandler { return &ListItemsHandler{Base: b} }

// Execute lists catalog items.
//
//	@Summary	List items
//	@Tags		items
//	@Produce	json
//	@Param		type		query		string	false	"material or maschine"
//	@Param		is_active	query		bool	false	"Filter by active flag"
//	@Param		low_stock	query		bool	false	"Only items at or below min stock"
//	@Success	200			{array}		ItemResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	isActive, err := queryBool(r, "is_active")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	lowStock, err := queryBool(r, "low_stock")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.svc.Catalog.ListItems(r.Context(), appsvcs.ListItemsInput{
		Type:     queryString(r, "type"),
		IsActive: isActive,
		LowStock: lowStock != nil && *lowStock,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, out)
}

// GetItemHandler handles GET /items/{id}.
type GetItemHandler struct{ Base }

func NewGetItemHandler(b Base) *GetItemHandler { return &GetItemHandler{Base: b} }

// Execute returns one item.
//
//	@Summary	Get item
//	@Tags		items
//	@Produce	json
//	@Param		id	path		string	true	"Item UUID"
//	@Success	200	{object}	ItemResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	item, err := h.svc.Catalog.GetItem(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}

// DeleteItemHandler handles DELETE /items/{id}.
type DeleteItemHandler struct{ Base }

func NewDeleteItemHandler(b Base) *DeleteItemHandler { return &DeleteItemHandler{Base: b} }

// Execute deactivates an item. Its history stays.
//
//	@Summary	Deactivate item
//	@Tags		items
//	@Param		id	path	string	true	"Item UUID"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.svc.Catalog.DeactivateItem(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
