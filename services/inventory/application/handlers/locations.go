package handlers

import (
	"net/http"

	"github.com/baustelle-app/lager/pkg/httpx"
	pkgvalidator "github.com/baustelle-app/lager/pkg/validator"
)

// CreateLocationRequest is the body of POST /locations.
type CreateLocationRequest struct {
	Name        string  `json:"name"        validate:"required,max=100" example:"Container 1"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Zone        *string `json:"zone"        validate:"omitempty,max=50" example:"Nord"`
} // @name CreateLocationRequest

// PostLocationHandler handles POST /locations.
type PostLocationHandler struct{ Base }

func NewPostLocationHandler(b Base) *PostLocationHandler { return &PostLocationHandler{Base: b} }

// Execute creates a storage location.
//
//	@Summary	Create location
//	@Tags		locations
//	@Accept		json
//	@Produce	json
//	@Param		request	body		CreateLocationRequest	true	"Location"
//	@Success	201		{object}	LocationResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/locations [post]
func (h *PostLocationHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateLocationRequest](w, r)
	if !ok {
		return
	}
	loc, err := h.svc.Catalog.CreateLocation(r.Context(), req.Name, req.Description, req.Zone)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, toLocationResponse(loc))
}

// ListLocationsHandler handles GET /locations.
type ListLocationsHandler struct{ Base }

func NewListLocationsHandler(b Base) *ListLocationsHandler { return &ListLocationsHandler{Base: b} }

// Execute lists storage locations by name.
//
//	@Summary	List locations
//	@Tags		locations
//	@Produce	json
//	@Param		is_active	query		bool	false	"Filter by active flag"
//	@Success	200			{array}		LocationResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/locations [get]
func (h *ListLocationsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	isActive, err := queryBool(r, "is_active")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	locs, err := h.svc.Catalog.ListLocations(r.Context(), isActive)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	out := make([]LocationResponse, len(locs))
	for i, l := range locs {
		out[i] = toLocationResponse(l)
	}
	httpx.JSON(w, http.StatusOK, out)
}
