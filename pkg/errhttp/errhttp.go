// Package errhttp maps inventory error kinds to HTTP responses.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/baustelle-app/lager/pkg/httpx"
	"github.com/baustelle-app/lager/pkg/telemetry"
	"github.com/baustelle-app/lager/services/inventory/domain"
)

// Machine-readable codes carried in the "code" field of error bodies.
const (
	CodeInvalidArgument   = "INVALID_ARGUMENT"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeNotFound          = "NOT_FOUND"
	CodeConflict          = "CONFLICT"
	CodeAlreadyExists     = "ALREADY_EXISTS"
	CodeInternal          = "INTERNAL"
)

// Writer renders errors. In production 5xx messages are masked.
type Writer struct {
	IsProduction bool
}

// Write maps err to a status and code and writes the JSON error body.
// Unrecognized errors become 500 and are reported to Sentry.
func (wr Writer) Write(w http.ResponseWriter, r *http.Request, err error) {
	status, code := Classify(err)
	if status >= http.StatusInternalServerError {
		telemetry.ReportError(r.Context(), err)
	}
	httpx.JSONError(w, status, code, httpx.SafeError(err, status, wr.IsProduction))
}

// WriteError writes err without masking.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	Writer{}.Write(w, r, err)
}

// Classify returns the HTTP status and machine code for err.
// Insufficient stock is checked first since it is the most specific kind.
func Classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusBadRequest, CodeInsufficientStock
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest, CodeInvalidArgument
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, CodeConflict
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, CodeAlreadyExists
	default:
		return http.StatusInternalServerError, CodeInternal
	}
}
