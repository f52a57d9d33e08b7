package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/cakeshop/internal/platform/logging"
	"github.com/jsamuelsen11/cakeshop/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
	statusTimedOut = "timed out"
)

// healthResponse is the body of both health endpoints. Checks is omitted on
// liveness.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves liveness and readiness. Responses are never cached,
// since a stale "ready" would keep traffic on a server whose hub has closed.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler reporting the given registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always 200.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, healthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every check passes, 503 with
// the failing checks logged otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := healthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}

		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
		resp.Checks[name] = checkMessage(err)
		logging.FromContext(ctx).WarnContext(ctx, "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}

func checkMessage(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return statusTimedOut
	}
	return err.Error()
}
