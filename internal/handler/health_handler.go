package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakubodys-twoje-pokoje/TP-Cenniki-sub000/pkg/response"
)

// Pinger is anything whose liveness can be checked
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health and readiness probes
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler creates a new HealthHandler. Nil pingers are skipped so
// optional backends can simply be left out.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	filtered := make(map[string]Pinger)
	for name, check := range checks {
		if check != nil {
			filtered[name] = check
		}
	}
	return &HealthHandler{checks: filtered}
}

// Health handles GET /health - process liveness only
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(map[string]string{"status": "ok"}))
}

// Ready handles GET /ready - checks every registered backend
func (h *HealthHandler) Ready(c *gin.Context) {
	statuses := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check.Ping(c.Request.Context()); err != nil {
			statuses[name] = err.Error()
			healthy = false
			continue
		}
		statuses[name] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Error(response.ErrCodeServiceUnavailable, "One or more backends are unavailable"))
		return
	}
	c.JSON(http.StatusOK, response.Success(statuses))
}
