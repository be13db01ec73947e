package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/pkg/httpx"
)

// StockAtLocationResponse is one location holding a scanned item.
type StockAtLocationResponse struct {
	LocationID   uuid.UUID       `json:"location_id"`
	LocationName string          `json:"location_name" example:"Regal A"`
	Quantity     decimal.Decimal `json:"quantity"      swaggertype:"number" example:"70"`
} // @name StockAtLocationResponse

// BarcodeLookupResponse answers a scan. Only found is set for an unknown code.
type BarcodeLookupResponse struct {
	Found        bool                      `json:"found"`
	Item         *ItemResponse             `json:"item,omitempty"`
	CurrentStock *decimal.Decimal          `json:"current_stock,omitempty" swaggertype:"number" example:"100"`
	Locations    []StockAtLocationResponse `json:"locations,omitempty"`
} // @name BarcodeLookupResponse

// GetBarcodeHandler handles GET /barcode/{code}.
type GetBarcodeHandler struct{ Base }

func NewGetBarcodeHandler(b Base) *GetBarcodeHandler { return &GetBarcodeHandler{Base: b} }

// Execute resolves a scanned barcode.
//
//	@Summary		Barcode lookup
//	@Description	Returns the item behind a barcode with its stock per location. An unknown code answers found=false with status 200.
//	@Tags			inventory
//	@Produce		json
//	@Param			code	path		string	true	"Barcode"
//	@Success		200		{object}	BarcodeLookupResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/barcode/{code} [get]
func (h *GetBarcodeHandler) Execute(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Catalog.LookupBarcode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if !res.Found {
		httpx.JSON(w, http.StatusOK, BarcodeLookupResponse{Found: false})
		return
	}

	item := toItemResponse(res.Item)
	stock := res.CurrentStock
	locations := make([]StockAtLocationResponse, len(res.Locations))
	for i, l := range res.Locations {
		locations[i] = StockAtLocationResponse{LocationID: l.LocationID, LocationName: l.LocationName, Quantity: l.Quantity}
	}
	httpx.JSON(w, http.StatusOK, BarcodeLookupResponse{
		Found:        true,
		Item:         &item,
		CurrentStock: &stock,
		Locations:    locations,
	})
}
