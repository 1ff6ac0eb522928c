package service

import "fmt"

// ServiceError represents a business logic error with a code
type ServiceError struct {
	Err     error
	Message string
	Code    string
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrCodeInvalidCard          = "invalid_card"
	ErrCodeInvalidCVV           = "invalid_cvv"
	ErrCodeInvalidAmount        = "invalid_amount"
	ErrCodeCardExpired          = "card_expired"
	ErrCodeInvalidAuthorization = "invalid_authorization"
	ErrCodeGatewayUnavailable   = "gateway_unavailable"
	ErrCodeGatewayProtocol      = "gateway_protocol"
	ErrCodeNotFound             = "not_found"
	ErrCodeInternalError        = "internal_error"
)
