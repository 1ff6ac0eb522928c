package handlers

import (
	"github.com/benx421/payment-gateway/e4/internal/api"
	"github.com/benx421/payment-gateway/e4/internal/models"
	"github.com/benx421/payment-gateway/e4/internal/service"
)

func toCardPaymentInput(body api.CardPaymentRequest) service.CardPaymentInput {
	return service.CardPaymentInput{
		Amount: body.Amount,
		Card: models.CreditCard{
			Number:            body.Card.Number,
			FirstName:         body.Card.FirstName,
			LastName:          body.Card.LastName,
			VerificationValue: deref(body.Card.Cvv),
			Month:             body.Card.ExpiryMonth,
			Year:              body.Card.ExpiryYear,
		},
		Options: models.Options{
			BillingAddress:  toAddress(body.BillingAddress),
			ShippingAddress: toAddress(body.ShippingAddress),
			OrderID:         deref(body.OrderId),
			Email:           deref(body.Email),
			Description:     deref(body.Description),
		},
	}
}

func toFollowUpInput(body api.FollowUpRequest) service.FollowUpInput {
	return service.FollowUpInput{
		Amount:        body.Amount,
		Authorization: body.Authorization,
		Options:       models.Options{OrderID: deref(body.OrderId)},
	}
}

func toVoidInput(body api.VoidRequest) service.VoidInput {
	return service.VoidInput{
		Authorization: body.Authorization,
		Options:       models.Options{OrderID: deref(body.OrderId)},
	}
}

func toAddress(a *api.Address) *models.Address {
	if a == nil {
		return nil
	}
	return &models.Address{
		Name:     deref(a.Name),
		Address1: deref(a.Address1),
		Address2: deref(a.Address2),
		City:     deref(a.City),
		State:    deref(a.State),
		Zip:      deref(a.Zip),
		Country:  deref(a.Country),
		Phone:    deref(a.Phone),
	}
}

func toTransactionResponse(entry *models.JournalEntry) api.TransactionResponse {
	return api.TransactionResponse{
		TransactionId:   entry.ID,
		Action:          string(entry.Action),
		TransactionType: entry.TransactionType,
		Success:         entry.Success,
		Message:         entry.Message,
		Authorization:   entry.Authorization,
		CvvResult:       optional(entry.CVVResult),
		OrderId:         optional(entry.OrderID),
		Amount:          entry.AmountCents,
		Test:            entry.Test,
		CreatedAt:       entry.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
