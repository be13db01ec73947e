package handlers

import (
	"net/http"
	"strconv"

	"github.com/baustelle-app/lager/pkg/httpx"
	"github.com/baustelle-app/lager/services/inventory/domain"
	"github.com/baustelle-app/lager/services/inventory/domain/repositories"
)

// GetBalancesHandler handles GET /inventory.
type GetBalancesHandler struct{ Base }

func NewGetBalancesHandler(b Base) *GetBalancesHandler { return &GetBalancesHandler{Base: b} }

// Execute lists balances, optionally narrowed to one item or location.
//
//	@Summary	List balances
//	@Tags		inventory
//	@Produce	json
//	@Param		item_id		query		string	false	"Item UUID"
//	@Param		location_id	query		string	false	"Location UUID"
//	@Success	200			{array}		BalanceResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/inventory [get]
func (h *GetBalancesHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := queryUUID(r, "item_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	locationID, err := queryUUID(r, "location_id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rows, err := h.svc.Stock.ListBalances(r.Context(), itemID, locationID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBalanceResponses(rows))
}

// ListTransactionsHandler handles GET /inventory/transactions.
type ListTransactionsHandler struct{ Base }

func NewListTransactionsHandler(b Base) *ListTransactionsHandler {
	return &ListTransactionsHandler{Base: b}
}

// Execute lists the transaction log, newest first.
//
//	@Summary	List transactions
//	@Tags		inventory
//	@Produce	json
//	@Param		item_id		query		string	false	"Item UUID"
//	@Param		location_id	query		string	false	"Location UUID"
//	@Param		operator_id	query		string	false	"Operator UUID"
//	@Param		limit		query		int		false	"Page size (default 50, max 500)"
//	@Success	200			{array}		TransactionResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/inventory/transactions [get]
func (h *ListTransactionsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var (
		filter repositories.TransactionFilter
		err    error
	)
	if filter.ItemID, err = queryUUID(r, "item_id"); err != nil {
		h.fail(w, r, err)
		return
	}
	if filter.LocationID, err = queryUUID(r, "location_id"); err != nil {
		h.fail(w, r, err)
		return
	}
	if filter.OperatorID, err = queryUUID(r, "operator_id"); err != nil {
		h.fail(w, r, err)
		return
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if filter.Limit, err = strconv.Atoi(v); err != nil || filter.Limit == 0 {
			h.fail(w, r, domain.Invalid("limit must be a positive integer"))
			return
		}
	}

	txns, err := h.svc.Stock.ListTransactions(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTransactionResponses(txns))
}

// GetTransactionHandler handles GET /inventory/transactions/{id}.
type GetTransactionHandler struct{ Base }

func NewGetTransactionHandler(b Base) *GetTransactionHandler { return &GetTransactionHandler{Base: b} }

// Execute returns one ledger entry.
//
//	@Summary	Get transaction
//	@Tags		inventory
//	@Produce	json
//	@Param		id	path		string	true	"Transaction UUID"
//	@Success	200	{object}	TransactionResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/inventory/transactions/{id} [get]
func (h *GetTransactionHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	txn, err := h.svc.Stock.GetTransaction(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toTransactionResponse(txn))
}

// GetSummaryHandler handles GET /inventory/summary and /inventory/low-stock.
type GetSummaryHandler struct {
	Base
	lowOnly bool
}

func NewGetSummaryHandler(b Base) *GetSummaryHandler { return &GetSummaryHandler{Base: b} }

func NewGetLowStockHandler(b Base) *GetSummaryHandler {
	return &GetSummaryHandler{Base: b, lowOnly: true}
}

// Execute aggregates stock per item.
//
//	@Summary	Stock summary
//	@Tags		inventory
//	@Produce	json
//	@Success	200	{array}	SummaryResponse
//	@Router		/inventory/summary [get]
//	@Router		/inventory/low-stock [get]
func (h *GetSummaryHandler) Execute(w http.ResponseWriter, r *http.Request) {
	fetch := h.svc.Stock.Summary
	if h.lowOnly {
		fetch = h.svc.Stock.LowStock
	}
	rows, err := fetch(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toSummaryResponses(rows))
}
