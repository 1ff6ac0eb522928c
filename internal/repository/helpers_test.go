package repository

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/benx421/payment-gateway/e4/internal/config"
	"github.com/benx421/payment-gateway/e4/internal/db"
)

func setupTestDB(t *testing.T) *db.DB {
	t.Helper()

	if os.Getenv("TEST_DATABASE") != "1" {
		t.Skip("set TEST_DATABASE=1 to run postgres journal tests")
	}

	if os.Getenv("E4_LOGIN") == "" {
		t.Setenv("E4_LOGIN", "test")
		t.Setenv("E4_PASSWORD", "test")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	logger := cfg.Logger.NewLogger()

	database, err := db.Connect(context.Background(), &cfg.Database, logger)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}

func cleanupTestDB(t *testing.T, database *db.DB) {
	t.Helper()
	if err := database.Close(); err != nil {
		log.Printf("failed to close test database: %v", err)
	}
}

func truncateJournal(t *testing.T, database *db.DB) {
	t.Helper()

	if _, err := database.ExecContext(context.Background(), "TRUNCATE TABLE transactions"); err != nil {
		t.Fatalf("failed to truncate transactions: %v", err)
	}
}
