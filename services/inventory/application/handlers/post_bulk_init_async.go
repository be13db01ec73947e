package handlers

import (
	"context"
	"net/http"

	"github.com/baustelle-app/lager/pkg/httpx"
	pkgvalidator "github.com/baustelle-app/lager/pkg/validator"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
)

// BulkInitStarter launches a bulk initialization in the background.
type BulkInitStarter interface {
	StartBulkInitialize(ctx context.Context, entries []appsvcs.BulkEntry) (workflowID, runID string, err error)
}

// BulkInitAcceptedResponse identifies the started workflow.
type BulkInitAcceptedResponse struct {
	WorkflowID string `json:"workflow_id" example:"bulk-init-0b6f3c1e"`
	RunID      string `json:"run_id"`
} // @name BulkInitAcceptedResponse

// PostBulkInitAsyncHandler handles POST /inventory/bulk-init/async.
type PostBulkInitAsyncHandler struct {
	Base
	starter BulkInitStarter
}

func NewPostBulkInitAsyncHandler(b Base, starter BulkInitStarter) *PostBulkInitAsyncHandler {
	return &PostBulkInitAsyncHandler{Base: b, starter: starter}
}

// Execute starts a bulk initialization workflow and returns immediately.
//
//	@Summary	Bulk initialize stock asynchronously
//	@Tags		inventory
//	@Accept		json
//	@Produce	json
//	@Param		request	body		BulkInitRequest	true	"Opening counts"
//	@Success	202		{object}	BulkInitAcceptedResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/inventory/bulk-init/async [post]
func (h *PostBulkInitAsyncHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[BulkInitRequest](w, r)
	if !ok {
		return
	}
	workflowID, runID, err := h.starter.StartBulkInitialize(r.Context(), bulkEntries(r, req.Entries))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusAccepted, BulkInitAcceptedResponse{WorkflowID: workflowID, RunID: runID})
}
