package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baustelle-app/lager/pkg/httpx"
)

type stubChecker struct{ err error }

func (s *stubChecker) Ping(_ context.Context) error { return s.err }

type healthBody struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func checkHealth(t *testing.T, checks ...httpx.HealthCheck) (int, healthBody) {
	t.Helper()
	rr := httptest.NewRecorder()
	httpx.HealthHandler(0, checks...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	var body healthBody
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rr.Code, body
}

func TestHealthHandler(t *testing.T) {
	down := errors.New("conn refused")

	tests := []struct {
		name       string
		checks     []httpx.HealthCheck
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name: "all healthy",
			checks: []httpx.HealthCheck{
				{Name: "database", Checker: &stubChecker{}},
				{Name: "redis", Checker: &stubChecker{}},
				{Name: "event_bus", Checker: &stubChecker{}},
			},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantChecks: map[string]string{"database": "ok", "redis": "ok", "event_bus": "ok"},
		},
		{
			name: "database down",
			checks: []httpx.HealthCheck{
				{Name: "database", Checker: &stubChecker{err: down}},
				{Name: "redis", Checker: &stubChecker{}},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
			wantChecks: map[string]string{"database": "unreachable", "redis": "ok"},
		},
		{
			name: "event bus down",
			checks: []httpx.HealthCheck{
				{Name: "database", Checker: &stubChecker{}},
				{Name: "event_bus", Checker: &stubChecker{err: down}},
			},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "degraded",
			wantChecks: map[string]string{"database": "ok", "event_bus": "unreachable"},
		},
		{
			name: "disabled dependency does not degrade",
			checks: []httpx.HealthCheck{
				{Name: "database", Checker: &stubChecker{}},
				{Name: "temporal", Checker: nil},
			},
			wantCode:   http.StatusOK,
			wantStatus: "ok",
			wantChecks: map[string]string{"database": "ok", "temporal": "disabled"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := checkHealth(t, tt.checks...)
			if code != tt.wantCode {
				t.Fatalf("code: got %d, want %d", code, tt.wantCode)
			}
			if body.Status != tt.wantStatus {
				t.Errorf("status: got %q, want %q", body.Status, tt.wantStatus)
			}
			for name, want := range tt.wantChecks {
				if body.Checks[name] != want {
					t.Errorf("%s: got %q, want %q", name, body.Checks[name], want)
				}
			}
		})
	}
}

func TestHealthHandler_ContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	httpx.HealthHandler(0, httpx.HealthCheck{Name: "database", Checker: &stubChecker{}}).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
}
