package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/pixell-roster/internal/ports"
)

// healthReport is the body of both probe endpoints. Checks maps a checker
// name to "ok" or its error text and is omitted for liveness.
type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness answers GET /health/live. It never touches a dependency.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, healthReport{Status: "ok"})
}

// Readiness answers GET /health/ready: 200 "ready" when every registered
// checker (store backend, department source) passes, else 503 "not_ready".
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	report := healthReport{Status: "ready", Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			report.Checks[name] = "ok"
			continue
		}
		report.Checks[name] = err.Error()
		report.Status, code = "not_ready", http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, report)
}
