package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionAction names the operation that produced a journal entry
type TransactionAction string

const (
	ActionAuthorize TransactionAction = "authorize"
	ActionPurchase  TransactionAction = "purchase"
	ActionCapture   TransactionAction = "capture"
	ActionRefund    TransactionAction = "refund"
	ActionVoid      TransactionAction = "void"
)

// JournalEntry records one gateway exchange. Card numbers and CVVs are never stored.
type JournalEntry struct {
	CreatedAt       time.Time         `db:"created_at"`
	Response        map[string]any    `db:"response"`
	Action          TransactionAction `db:"action"`
	TransactionType string            `db:"transaction_type"`
	Message         string            `db:"message"`
	Authorization   string            `db:"auth_token"`
	CVVResult       string            `db:"cvv_result"`
	OrderID         string            `db:"order_id"`
	AmountCents     int64             `db:"amount_cents"`
	ID              uuid.UUID         `db:"id"`
	Success         bool              `db:"success"`
	Test            bool              `db:"test"`
}
