package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/retro-board/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// SessionCounter reports how many viewer sessions are open.
type SessionCounter interface {
	Sessions() int
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	sessions SessionCounter
}

// NewHealthHandler creates a new HealthHandler over the health registry and
// the session counter reported by the liveness probe.
func NewHealthHandler(registry ports.HealthRegistry, sessions SessionCounter) *HealthHandler {
	return &HealthHandler{registry: registry, sessions: sessions}
}

// Liveness handles GET /health/live. Always returns 200 OK together with the
// number of open sessions.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   statusOK,
		"sessions": h.sessions.Sessions(),
	})
}

// Readiness handles GET /health/ready. Returns 200 if the upstream retro API
// and the board feed are reachable, 503 otherwise.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	healthy := true
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			healthy = false
			continue
		}
		checks[name] = statusOK
	}

	status, code := statusReady, http.StatusOK
	if !healthy {
		status, code = statusNotReady, http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status": status,
		"checks": checks,
	})
}
