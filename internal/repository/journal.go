// Package repository provides storage for the gateway transaction journal.
package repository

import (
	"context"

	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/google/uuid"
)

// JournalRepository records gateway exchanges
type JournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.JournalEntry, error)
}

// nopJournal discards entries; used when no journal backend is configured
type nopJournal struct{}

// NewNopJournal creates a JournalRepository that stores nothing
func NewNopJournal() JournalRepository {
	return nopJournal{}
}

func (nopJournal) Create(context.Context, *models.JournalEntry) error {
	return nil
}

func (nopJournal) FindByID(context.Context, uuid.UUID) (*models.JournalEntry, error) {
	return nil, models.ErrNotFound
}

var (
	_ JournalRepository = (*postgresJournal)(nil)
	_ JournalRepository = (*dynamoJournal)(nil)
	_ JournalRepository = nopJournal{}
)
