package repository

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresJournal_CreateAndFind(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateJournal(t, database)

	repo := NewPostgresJournal(database)

	entry := &models.JournalEntry{
		Action:          models.ActionAuthorize,
		TransactionType: "01",
		Success:         true,
		Message:         "Approved",
		Authorization:   "ET1700;100;184638",
		CVVResult:       "M",
		OrderID:         "order-1",
		AmountCents:     100,
		Test:            true,
		Response: map[string]any{
			"transaction_approved": json.Number("1"),
			"bank_message":         "Approved",
		},
	}

	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())

	found, err := repo.FindByID(context.Background(), entry.ID)
	require.NoError(t, err)

	assert.Equal(t, entry.ID, found.ID)
	assert.Equal(t, models.ActionAuthorize, found.Action)
	assert.Equal(t, "01", found.TransactionType)
	assert.True(t, found.Success)
	assert.Equal(t, "ET1700;100;184638", found.Authorization)
	assert.Equal(t, "M", found.CVVResult)
	assert.Equal(t, "order-1", found.OrderID)
	assert.Equal(t, int64(100), found.AmountCents)
	assert.Equal(t, json.Number("1"), found.Response["transaction_approved"])
	assert.Equal(t, "Approved", found.Response["bank_message"])
}

func TestPostgresJournal_CreateDuplicate(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)
	truncateJournal(t, database)

	repo := NewPostgresJournal(database)

	entry := &models.JournalEntry{
		ID:              uuid.New(),
		Action:          models.ActionVoid,
		TransactionType: "33",
	}
	require.NoError(t, repo.Create(context.Background(), entry))

	dup := &models.JournalEntry{
		ID:              entry.ID,
		Action:          models.ActionVoid,
		TransactionType: "33",
	}
	assert.ErrorIs(t, repo.Create(context.Background(), dup), models.ErrDuplicateEntry)
}

func TestPostgresJournal_FindByIDNotFound(t *testing.T) {
	database := setupTestDB(t)
	defer cleanupTestDB(t, database)

	repo := NewPostgresJournal(database)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDecodeResponse(t *testing.T) {
	got, err := decodeResponse(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = decodeResponse([]byte(`{"amount":1.5}`))
	require.NoError(t, err)
	assert.Equal(t, json.Number("1.5"), got["amount"])

	_, err = decodeResponse([]byte(`{`))
	assert.Error(t, err)
}
