// Package handlers implements HTTP handlers for the gateway API.
package handlers

import (
	"log/slog"

	"github.com/benx421/payment-gateway/e4/internal/service"
)

// Handler serves the payment, transaction and health endpoints
type Handler struct {
	payments      service.PaymentProcessor
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
// healthChecker may be nil when no database backs the journal.
func NewHandler(
	payments service.PaymentProcessor,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		payments:      payments,
		healthChecker: healthChecker,
		logger:        logger,
	}
}
