// Package handlers exposes the inventory services over HTTP+JSON.
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/baustelle-app/lager/pkg/auth"
	"github.com/baustelle-app/lager/pkg/errhttp"
	appsvcs "github.com/baustelle-app/lager/services/inventory/application/services"
	"github.com/baustelle-app/lager/services/inventory/domain"
)

func init() {
	// quantities go out as JSON numbers; input accepts numbers or strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Base carries what every inventory handler needs.
type Base struct {
	svc  *appsvcs.Services
	errs errhttp.Writer
}

// NewBase bundles the services and the error writer. isProduction masks
// internal error messages.
func NewBase(svc *appsvcs.Services, isProduction bool) Base {
	return Base{svc: svc, errs: errhttp.Writer{IsProduction: isProduction}}
}

func (b Base) fail(w http.ResponseWriter, r *http.Request, err error) {
	b.errs.Write(w, r, err)
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error" example:"insufficient stock: available 70, requested 80"`
	Code  string `json:"code"  example:"INSUFFICIENT_STOCK"`
} // @name ErrorResponse

// operatorID prefers the authenticated operator over the one in the body.
func operatorID(r *http.Request, fromBody string) (uuid.UUID, error) {
	if id, err := auth.OperatorIDFromCtx(r.Context()); err == nil {
		return id, nil
	}
	if strings.TrimSpace(fromBody) == "" {
		return uuid.Nil, domain.Invalid("operator_id is required")
	}
	return parseUUID("operator_id", fromBody)
}

func parseUUID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, domain.Invalid("%s must be a valid UUID", field)
	}
	return id, nil
}

func pathUUID(r *http.Request, param string) (uuid.UUID, error) {
	return parseUUID(param, chi.URLParam(r, param))
}

// queryUUID returns nil when the parameter is absent.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := parseUUID(name, v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryBool(r *http.Request, name string) (*bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, domain.Invalid("%s must be true or false", name)
	}
	return &b, nil
}

func queryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}
