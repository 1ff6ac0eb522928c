package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorCode identifies the reason a request failed
type ErrorCode string

// Error codes returned in ErrorResponse.Error.
const (
	ErrorCodeInvalidRequest       ErrorCode = "invalid_request"
	ErrorCodeUnauthorized         ErrorCode = "unauthorized"
	ErrorCodeInvalidCard          ErrorCode = "invalid_card"
	ErrorCodeInvalidCvv           ErrorCode = "invalid_cvv"
	ErrorCodeInvalidAmount        ErrorCode = "invalid_amount"
	ErrorCodeCardExpired          ErrorCode = "card_expired"
	ErrorCodeInvalidAuthorization ErrorCode = "invalid_authorization"
	ErrorCodeGatewayUnavailable   ErrorCode = "gateway_unavailable"
	ErrorCodeGatewayProtocol      ErrorCode = "gateway_protocol"
	ErrorCodeNotFound             ErrorCode = "not_found"
	ErrorCodeInternalError        ErrorCode = "internal_error"
)

// HealthStatus is the service state reported by /health
type HealthStatus string

const (
	Healthy   HealthStatus = "healthy"
	Unhealthy HealthStatus = "unhealthy"
)

// ErrorResponse is the body of every non-2xx reply
type ErrorResponse struct {
	Error   ErrorCode `json:"error"`
	Message string    `json:"message"`
}

type HealthResponse struct {
	Status HealthStatus `json:"status"`
}

// Card is the payment card submitted with authorizations and purchases
type Card struct {
	Cvv         *string `json:"cvv,omitempty"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Number      string  `json:"number"`
	ExpiryMonth int     `json:"expiry_month"`
	ExpiryYear  int     `json:"expiry_year"`
}

type Address struct {
	Address1 *string `json:"address1,omitempty"`
	Address2 *string `json:"address2,omitempty"`
	City     *string `json:"city,omitempty"`
	Country  *string `json:"country,omitempty"`
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	State    *string `json:"state,omitempty"`
	Zip      *string `json:"zip,omitempty"`
}

// CardPaymentRequest is the body of authorization and purchase requests. Amount is in minor units.
type CardPaymentRequest struct {
	BillingAddress  *Address `json:"billing_address,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Email           *string  `json:"email,omitempty"`
	OrderId         *string  `json:"order_id,omitempty"`
	Card            Card     `json:"card"`
	Amount          int64    `json:"amount"`
}

// FollowUpRequest is the body of capture and refund requests
type FollowUpRequest struct {
	OrderId       *string `json:"order_id,omitempty"`
	Authorization string  `json:"authorization"`
	Amount        int64   `json:"amount"`
}

type VoidRequest struct {
	OrderId       *string `json:"order_id,omitempty"`
	Authorization string  `json:"authorization"`
}

// TransactionResponse describes one gateway exchange as recorded in the journal
type TransactionResponse struct {
	CreatedAt       time.Time          `json:"created_at"`
	CvvResult       *string            `json:"cvv_result,omitempty"`
	OrderId         *string            `json:"order_id,omitempty"`
	Action          string             `json:"action"`
	Authorization   string             `json:"authorization"`
	Message         string             `json:"message"`
	TransactionType string             `json:"transaction_type"`
	Amount          int64              `json:"amount"`
	TransactionId   openapi_types.UUID `json:"transaction_id"`
	Success         bool               `json:"success"`
	Test            bool               `json:"test"`
}

// Request bodies by operation.
type (
	CreateAuthorizationJSONRequestBody = CardPaymentRequest
	CreatePurchaseJSONRequestBody      = CardPaymentRequest
	CreateCaptureJSONRequestBody       = FollowUpRequest
	CreateRefundJSONRequestBody        = FollowUpRequest
	CreateVoidJSONRequestBody          = VoidRequest
)
