package repository

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/benx421/payment-gateway/e4/internal/db"
	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

const pqUniqueViolation = "23505"

// postgresJournal implements JournalRepository on PostgreSQL
type postgresJournal struct {
	db *db.DB
}

// NewPostgresJournal creates a JournalRepository backed by the transactions table
func NewPostgresJournal(database *db.DB) JournalRepository {
	return &postgresJournal{db: database}
}

// Create inserts an entry, assigning an ID and timestamp when unset
func (r *postgresJournal) Create(ctx context.Context, entry *models.JournalEntry) error {
	prepareEntry(entry)

	response, err := json.Marshal(entry.Response)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	query := `
		INSERT INTO transactions (
			id, action, transaction_type, success, message, auth_token,
			cvv_result, order_id, amount_cents, test, response, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.db.ExecContext(ctx, query,
		entry.ID,
		entry.Action,
		entry.TransactionType,
		entry.Success,
		entry.Message,
		entry.Authorization,
		entry.CVVResult,
		entry.OrderID,
		entry.AmountCents,
		entry.Test,
		string(response),
		entry.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return models.ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create journal entry: %w", err)
	}

	return nil
}

// FindByID retrieves an entry by its UUID
func (r *postgresJournal) FindByID(ctx context.Context, id uuid.UUID) (*models.JournalEntry, error) {
	query := `
		SELECT id, action, transaction_type, success, message, auth_token,
		       cvv_result, order_id, amount_cents, test, response, created_at
		FROM transactions
		WHERE id = $1
	`

	var (
		entry    models.JournalEntry
		response []byte
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.Action,
		&entry.TransactionType,
		&entry.Success,
		&entry.Message,
		&entry.Authorization,
		&entry.CVVResult,
		&entry.OrderID,
		&entry.AmountCents,
		&entry.Test,
		&response,
		&entry.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find journal entry: %w", err)
	}

	if entry.Response, err = decodeResponse(response); err != nil {
		return nil, err
	}

	return &entry, nil
}

func prepareEntry(entry *models.JournalEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
}

func decodeResponse(data []byte) (map[string]any, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var response map[string]any
	if err := dec.Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode stored response: %w", err)
	}
	return response, nil
}
