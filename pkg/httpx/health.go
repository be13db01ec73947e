package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any dependency that can be pinged
// (database.Database, kvstore.RedisClient and events.EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthCheck names one probed dependency. A nil Checker is reported as
// "disabled" and does not degrade the overall status.
type HealthCheck struct {
	Name    string
	Checker HealthChecker
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// HealthHandler probes every check and answers 503 when any of them fails.
func HealthHandler(timeout time.Duration, checks ...HealthCheck) http.HandlerFunc {
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if c.Checker == nil {
				resp.Checks[c.Name] = "disabled"
				continue
			}
			if err := c.Checker.Ping(ctx); err != nil {
				resp.Status = "degraded"
				resp.Checks[c.Name] = "unreachable"
				continue
			}
			resp.Checks[c.Name] = "ok"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
