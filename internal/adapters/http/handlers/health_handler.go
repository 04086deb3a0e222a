package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/clusterconf/internal/platform/logging"
	"github.com/jsamuelsen11/clusterconf/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready. Returns 200 if every check passes
// (override store reachable, snapshot fresh), 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	var failed []string
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			failed = append(failed, name)
		} else {
			checks[name] = statusOK
		}
	}

	status := statusReady
	code := http.StatusOK
	if len(failed) > 0 {
		status = statusNotReady
		code = http.StatusServiceUnavailable

		slices.Sort(failed)
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("failed", failed),
		)
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
