package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/benx421/payment-gateway/e4/internal/api"
)

// GetHealth handles GET /health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	if h.healthChecker != nil {
		pingCtx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.healthChecker.PingContext(pingCtx); err != nil {
			h.logger.Error("health check failed: database unreachable", "error", err)
			api.WriteJSON(w, http.StatusServiceUnavailable, api.HealthResponse{Status: api.Unhealthy})
			return
		}
	}

	api.WriteJSON(w, http.StatusOK, api.HealthResponse{Status: api.Healthy})
}
