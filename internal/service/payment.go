package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/benx421/payment-gateway/e4/internal/e4"
	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/benx421/payment-gateway/e4/internal/repository"
	"github.com/google/uuid"
)

// CardPaymentInput is the input of Authorize and Purchase. Amount is in minor units.
type CardPaymentInput struct {
	Card    models.CreditCard
	Options models.Options
	Amount  int64
}

// FollowUpInput is the input of Capture and Refund
type FollowUpInput struct {
	Authorization string
	Options       models.Options
	Amount        int64
}

// VoidInput is the input of Void
type VoidInput struct {
	Authorization string
	Options       models.Options
}

// PaymentService validates payment requests, submits them to the gateway and
// records every gateway result in the journal.
type PaymentService struct {
	gateway PaymentGateway
	journal repository.JournalRepository
	logger  *slog.Logger
	now     func() time.Time
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(gateway PaymentGateway, journal repository.JournalRepository, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		journal: journal,
		logger:  logger,
		now:     time.Now,
	}
}

// Authorize places a hold on the card
func (s *PaymentService) Authorize(ctx context.Context, in CardPaymentInput) (*models.JournalEntry, error) {
	if err := s.validateCardPayment(in); err != nil {
		return nil, err
	}

	result, err := s.gateway.Authorize(ctx, in.Amount, in.Card, in.Options)
	if err != nil {
		return nil, gatewayError(err)
	}

	return s.record(ctx, models.ActionAuthorize, in.Amount, in.Options, result), nil
}

// Purchase charges the card
func (s *PaymentService) Purchase(ctx context.Context, in CardPaymentInput) (*models.JournalEntry, error) {
	if err := s.validateCardPayment(in); err != nil {
		return nil, err
	}

	result, err := s.gateway.Purchase(ctx, in.Amount, in.Card, in.Options)
	if err != nil {
		return nil, gatewayError(err)
	}

	return s.record(ctx, models.ActionPurchase, in.Amount, in.Options, result), nil
}

// Capture completes an earlier authorization
func (s *PaymentService) Capture(ctx context.Context, in FollowUpInput) (*models.JournalEntry, error) {
	if err := validateFollowUp(in); err != nil {
		return nil, err
	}

	result, err := s.gateway.Capture(ctx, in.Amount, in.Authorization, in.Options)
	if err != nil {
		return nil, gatewayError(err)
	}

	return s.record(ctx, models.ActionCapture, in.Amount, in.Options, result), nil
}

// Refund returns money from an earlier purchase or capture
func (s *PaymentService) Refund(ctx context.Context, in FollowUpInput) (*models.JournalEntry, error) {
	if err := validateFollowUp(in); err != nil {
		return nil, err
	}

	result, err := s.gateway.Refund(ctx, in.Amount, in.Authorization, in.Options)
	if err != nil {
		return nil, gatewayError(err)
	}

	return s.record(ctx, models.ActionRefund, in.Amount, in.Options, result), nil
}

// Void cancels an earlier transaction for the amount carried by its authorization
func (s *PaymentService) Void(ctx context.Context, in VoidInput) (*models.JournalEntry, error) {
	auth, err := parseAuthorization(in.Authorization)
	if err != nil {
		return nil, err
	}

	result, err := s.gateway.Void(ctx, in.Authorization, in.Options)
	if err != nil {
		return nil, gatewayError(err)
	}

	return s.record(ctx, models.ActionVoid, auth.Amount, in.Options, result), nil
}

// GetTransaction retrieves a journal entry by ID
func (s *PaymentService) GetTransaction(ctx context.Context, id uuid.UUID) (*models.JournalEntry, error) {
	entry, err := s.journal.FindByID(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Code:    ErrCodeNotFound,
			Message: "transaction not found",
		}
	}
	if err != nil {
		return nil, &ServiceError{
			Code:    ErrCodeInternalError,
			Message: "failed to load transaction",
			Err:     err,
		}
	}

	return entry, nil
}

func (s *PaymentService) validateCardPayment(in CardPaymentInput) error {
	if err := ValidateAmount(in.Amount); err != nil {
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	return validateCard(in.Card, s.now())
}

func validateFollowUp(in FollowUpInput) error {
	if err := ValidateAmount(in.Amount); err != nil {
		return &ServiceError{Code: ErrCodeInvalidAmount, Message: err.Error()}
	}

	_, err := parseAuthorization(in.Authorization)
	return err
}

// parseAuthorization decodes the token and checks the tag is usable on a follow-up request
func parseAuthorization(authorization string) (e4.Authorization, error) {
	auth, err := e4.ParseAuthorization(authorization)
	if err == nil {
		_, err = auth.TagNumber()
	}
	if err != nil {
		return e4.Authorization{}, &ServiceError{
			Code:    ErrCodeInvalidAuthorization,
			Message: "authorization is not a valid E4 authorization",
			Err:     err,
		}
	}

	return auth, nil
}

// record journals a gateway result. A journal failure is logged and the
// entry is still returned, since the gateway outcome already happened.
func (s *PaymentService) record(ctx context.Context, action models.TransactionAction, amount int64, opts models.Options, result *e4.Result) *models.JournalEntry {
	entry := &models.JournalEntry{
		ID:              uuid.New(),
		CreatedAt:       s.now().UTC(),
		Action:          action,
		TransactionType: string(result.TransactionType),
		Success:         result.Success,
		Message:         result.Message,
		Authorization:   result.Authorization,
		CVVResult:       result.CVVResult,
		OrderID:         opts.OrderID,
		AmountCents:     amount,
		Test:            result.Test,
		Response:        redactResponse(result.Params),
	}

	if err := s.journal.Create(ctx, entry); err != nil {
		s.logger.Error("failed to journal gateway result",
			"transaction_id", entry.ID,
			"action", action,
			"success", entry.Success,
			"error", err,
		)
	}

	if !entry.Success {
		s.logger.Info("transaction declined",
			"transaction_id", entry.ID,
			"action", action,
			"message", entry.Message,
		)
	}

	return entry
}

func gatewayError(err error) error {
	var (
		protocolErr *e4.ProtocolError
		responseErr *e4.ResponseError
	)

	switch {
	case errors.Is(err, e4.ErrMalformedAuthorization):
		return &ServiceError{
			Code:    ErrCodeInvalidAuthorization,
			Message: "authorization is not a valid E4 authorization",
			Err:     err,
		}
	case errors.As(err, &protocolErr):
		return &ServiceError{
			Code:    ErrCodeGatewayProtocol,
			Message: "gateway returned an unreadable response",
			Err:     err,
		}
	case errors.As(err, &responseErr):
		return &ServiceError{
			Code:    ErrCodeGatewayUnavailable,
			Message: responseErr.Error(),
			Err:     err,
		}
	default:
		return &ServiceError{
			Code:    ErrCodeGatewayUnavailable,
			Message: fmt.Sprintf("gateway request failed: %v", err),
			Err:     err,
		}
	}
}

// sensitiveResponseFields are echoed by E4 and must not reach the journal
var sensitiveResponseFields = []string{
	"Password",
	"password",
	"cc_verification_str2",
	"cvd_code",
}

// redactResponse copies a gateway response without credentials or the CVV,
// masking the card number to its last four digits.
func redactResponse(params map[string]any) map[string]any {
	if params == nil {
		return nil
	}

	out := make(map[string]any, len(params))
	for k, v := range params {
		out[k] = v
	}

	for _, k := range sensitiveResponseFields {
		delete(out, k)
	}

	if number, ok := out["cc_number"].(string); ok {
		out["cc_number"] = maskCardNumber(number)
	}

	return out
}

func maskCardNumber(number string) string {
	if len(number) <= 4 {
		return number
	}

	masked := make([]byte, len(number))
	for i := range masked {
		masked[i] = '#'
	}
	copy(masked[len(number)-4:], number[len(number)-4:])
	return string(masked)
}
