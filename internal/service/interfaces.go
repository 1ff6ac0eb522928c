package service

import (
	"context"

	"github.com/benx421/payment-gateway/e4/internal/e4"
	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/google/uuid"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// PaymentGateway submits transactions to the processor
type PaymentGateway interface {
	Authorize(ctx context.Context, money int64, card models.CreditCard, opts models.Options) (*e4.Result, error)
	Purchase(ctx context.Context, money int64, card models.CreditCard, opts models.Options) (*e4.Result, error)
	Capture(ctx context.Context, money int64, authorization string, opts models.Options) (*e4.Result, error)
	Refund(ctx context.Context, money int64, authorization string, opts models.Options) (*e4.Result, error)
	Void(ctx context.Context, authorization string, opts models.Options) (*e4.Result, error)
}

// PaymentProcessor handles payment operations and journal lookups
type PaymentProcessor interface {
	Authorize(ctx context.Context, in CardPaymentInput) (*models.JournalEntry, error)
	Purchase(ctx context.Context, in CardPaymentInput) (*models.JournalEntry, error)
	Capture(ctx context.Context, in FollowUpInput) (*models.JournalEntry, error)
	Refund(ctx context.Context, in FollowUpInput) (*models.JournalEntry, error)
	Void(ctx context.Context, in VoidInput) (*models.JournalEntry, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*models.JournalEntry, error)
}

// Ensure concrete types implement interfaces
var (
	_ PaymentGateway   = (*e4.Gateway)(nil)
	_ PaymentProcessor = (*PaymentService)(nil)
)
