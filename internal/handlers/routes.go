package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/payment-gateway/e4/internal/api"
	"github.com/benx421/payment-gateway/e4/internal/config"
	"github.com/benx421/payment-gateway/e4/internal/middleware"
	"github.com/benx421/payment-gateway/e4/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	payments service.PaymentProcessor,
	healthChecker service.HealthChecker,
	security *config.SecurityConfig,
	logger *slog.Logger,
) (http.Handler, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	validate, err := api.RequestValidator(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create request validator: %w", err)
	}

	handler := NewHandler(payments, healthChecker, logger)

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.APIKey(security.APIKey, logger))
	r.Use(validate)

	api.RegisterDocsRoutes(r)
	r.Get("/health", handler.GetHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/authorizations", handler.CreateAuthorization)
		r.Post("/purchases", handler.CreatePurchase)
		r.Post("/captures", handler.CreateCapture)
		r.Post("/refunds", handler.CreateRefund)
		r.Post("/voids", handler.CreateVoid)
		r.Get("/transactions/{transactionId}", handler.GetTransaction)
	})

	return r, nil
}
