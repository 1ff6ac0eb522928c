package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benx421/payment-gateway/e4/internal/config"
	"github.com/benx421/payment-gateway/e4/internal/db"
	"github.com/benx421/payment-gateway/e4/internal/e4"
	"github.com/benx421/payment-gateway/e4/internal/handlers"
	"github.com/benx421/payment-gateway/e4/internal/repository"
	"github.com/benx421/payment-gateway/e4/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting e4 gateway api",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
		"test_mode", cfg.Gateway.TestMode,
		"journal", cfg.Journal.Backend,
	)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	gateway, err := e4.New(e4.Config{
		Login:    cfg.Gateway.Login,
		Password: cfg.Gateway.Password,
		TestURL:  cfg.Gateway.TestURL,
		LiveURL:  cfg.Gateway.LiveURL,
		Test:     cfg.Gateway.TestMode,
	}, e4.NewHTTPPoster(&http.Client{Timeout: cfg.Gateway.Timeout}), logger)
	if err != nil {
		return err
	}

	journal, database, err := openJournal(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if database != nil {
		defer database.Close()
	}

	payments := service.NewPaymentService(gateway, journal, logger)

	var healthChecker service.HealthChecker
	if database != nil {
		healthChecker = database
	}

	router, err := handlers.NewRouter(payments, healthChecker, &cfg.Security, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

// openJournal selects the journal backend. The returned *db.DB is nil unless
// the postgres backend is in use.
func openJournal(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.JournalRepository, *db.DB, error) {
	switch cfg.Journal.Backend {
	case config.JournalBackendPostgres:
		database, err := db.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(ctx); err != nil {
			_ = database.Close() //nolint:errcheck // already failing
			return nil, nil, err
		}
		return repository.NewPostgresJournal(database), database, nil

	case config.JournalBackendDynamoDB:
		client, err := db.NewDynamoDBClient(ctx, &cfg.Journal)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("journaling to dynamodb", "table", cfg.Journal.DynamoDBTable)
		return repository.NewDynamoJournal(client, cfg.Journal.DynamoDBTable), nil, nil

	case config.JournalBackendNone:
		logger.Warn("transaction journal disabled")
		return repository.NewNopJournal(), nil, nil

	default:
		return nil, nil, fmt.Errorf("unsupported journal backend: %s", cfg.Journal.Backend)
	}
}
