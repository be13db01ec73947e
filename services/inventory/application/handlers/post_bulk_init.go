package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/baustelle-app/lager/pkg/auth"
	"github.com/baustelle-app/lager/pkg/errhttp"
	"github.com/baustelle-app/lager/pkg/httpx"
	"github.com/baustelle-app/lager/pkg/telemetry"
	pkgvalidator "github.com/baustelle-app/lager/pkg/validator"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
)

// BulkEntryRequest is one opening count. Fields carry no validation tags:
// each entry is checked on its own so a bad row does not reject the batch.
type BulkEntryRequest struct {
	ItemID     string          `json:"item_id"     example:"123e4567-e89b-12d3-a456-426614174000"`
	LocationID string          `json:"location_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity   json.RawMessage `json:"quantity"    swaggertype:"number" example:"100"`
	OperatorID string          `json:"operator_id"`
	Notes      string          `json:"notes"`
} // @name BulkEntryRequest

// BulkInitRequest is the body of POST /inventory/bulk-init.
type BulkInitRequest struct {
	Entries []BulkEntryRequest `json:"entries" validate:"required,min=1,max=1000"`
} // @name BulkInitRequest

// BulkEntryResultResponse reports one entry, in request order.
type BulkEntryResultResponse struct {
	Index       int                  `json:"index"`
	ItemID      string               `json:"item_id"`
	Success     bool                 `json:"success"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Error       string               `json:"error,omitempty"`
	Code        string               `json:"code,omitempty"`
} // @name BulkEntryResultResponse

// BulkInitResponse summarizes a bulk initialization.
type BulkInitResponse struct {
	Total     int                       `json:"total"     example:"3"`
	Succeeded int                       `json:"succeeded" example:"2"`
	Failed    int                       `json:"failed"    example:"1"`
	Results   []BulkEntryResultResponse `json:"results"`
} // @name BulkInitResponse

// PostBulkInitHandler handles POST /inventory/bulk-init.
type PostBulkInitHandler struct{ Base }

func NewPostBulkInitHandler(b Base) *PostBulkInitHandler { return &PostBulkInitHandler{Base: b} }

// Execute records an initial transaction per entry. Partial success answers
// 200; the per-entry results say which rows failed.
//
//	@Summary	Bulk initialize stock
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Param		request	body		BulkInitRequest	true	"Opening counts"
//	@Success	200		{object}	BulkInitResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/inventory/bulk-init [post]
func (h *PostBulkInitHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[BulkInitRequest](w, r)
	if !ok {
		return
	}

	entries := bulkEntries(r, req.Entries)
	res, err := h.svc.Ledger.BulkInitialize(r.Context(), entries)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	resp := BulkInitResponse{
		Total:     res.Total,
		Succeeded: res.Succeeded,
		Failed:    res.Failed,
		Results:   make([]BulkEntryResultResponse, len(res.Results)),
	}
	for i, er := range res.Results {
		out := BulkEntryResultResponse{Index: er.Index, ItemID: er.ItemID, Success: er.Success}
		if er.Transaction != nil {
			txn := toTransactionResponse(er.Transaction)
			out.Transaction = &txn
		}
		if er.Err != nil {
			var status int
			status, out.Code = errhttp.Classify(er.Err)
			if status >= http.StatusInternalServerError {
				telemetry.ReportError(r.Context(), er.Err)
			}
			out.Error = httpx.SafeError(er.Err, status, h.errs.IsProduction)
		}
		resp.Results[i] = out
	}
	httpx.JSON(w, http.StatusOK, resp)
}

// bulkEntries fills each entry's operator from the session when there is
// one.
func bulkEntries(r *http.Request, in []BulkEntryRequest) []appsvcs.BulkEntry {
	sessionOperator := ""
	if id, err := auth.OperatorIDFromCtx(r.Context()); err == nil {
		sessionOperator = id.String()
	}
	out := make([]appsvcs.BulkEntry, len(in))
	for i, e := range in {
		op := e.OperatorID
		if sessionOperator != "" {
			op = sessionOperator
		}
		out[i] = appsvcs.BulkEntry{
			ItemID:     e.ItemID,
			LocationID: e.LocationID,
			OperatorID: op,
			Quantity:   quantityText(e.Quantity),
			Notes:      e.Notes,
		}
	}
	return out
}

// quantityText accepts a JSON number or a numeric string. Anything else is
// passed through and rejected when the entry is parsed.
func quantityText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	text := strings.TrimSpace(string(raw))
	if text == "null" {
		return ""
	}
	return text
}
