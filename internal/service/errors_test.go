package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/benx421/payment-gateway/e4/internal/e4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ServiceError
		expected string
	}{
		{
			name:     "without cause",
			err:      &ServiceError{Code: ErrCodeInvalidCard, Message: "invalid card number"},
			expected: "invalid card number",
		},
		{
			name: "with gateway cause",
			err: &ServiceError{
				Code:    ErrCodeGatewayUnavailable,
				Message: "gateway request failed",
				Err:     &e4.ResponseError{Status: "503 Service Unavailable", StatusCode: http.StatusServiceUnavailable},
			},
			expected: "gateway request failed: Failed with 503 Service Unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestServiceError_NoUnwrap(t *testing.T) {
	err := &ServiceError{Code: ErrCodeInvalidAmount, Message: "amount must be positive"}

	assert.Nil(t, err.Unwrap())
}

func TestGatewayError(t *testing.T) {
	transportErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		err          error
		target       error
		name         string
		expectedCode string
		expectedMsg  string
	}{
		{
			name:         "malformed authorization",
			err:          fmt.Errorf("%w: expected 3 fields, got 1", e4.ErrMalformedAuthorization),
			target:       e4.ErrMalformedAuthorization,
			expectedCode: ErrCodeInvalidAuthorization,
			expectedMsg:  "authorization is not a valid E4 authorization",
		},
		{
			name:         "unreadable body",
			err:          &e4.ProtocolError{Body: []byte("<html>"), Err: errors.New("invalid character '<'")},
			expectedCode: ErrCodeGatewayProtocol,
			expectedMsg:  "gateway returned an unreadable response",
		},
		{
			name:         "non-2xx reply",
			err:          &e4.ResponseError{Status: "500 Internal Server Error", StatusCode: http.StatusInternalServerError},
			expectedCode: ErrCodeGatewayUnavailable,
			expectedMsg:  "Failed with 500 Internal Server Error",
		},
		{
			name:         "transport failure",
			err:          transportErr,
			target:       transportErr,
			expectedCode: ErrCodeGatewayUnavailable,
			expectedMsg:  "gateway request failed: dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gatewayError(tt.err)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, tt.expectedCode, svcErr.Code)
			assert.Equal(t, tt.expectedMsg, svcErr.Message)
			assert.Same(t, tt.err, svcErr.Unwrap())
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestGatewayError_UnwrapReachesE4Error(t *testing.T) {
	protocolErr := &e4.ProtocolError{Body: []byte("null"), Err: errors.New("response is not a JSON object")}
	responseErr := &e4.ResponseError{Status: "502 Bad Gateway", StatusCode: http.StatusBadGateway}

	var gotProtocol *e4.ProtocolError
	require.ErrorAs(t, gatewayError(protocolErr), &gotProtocol)
	assert.Same(t, protocolErr, gotProtocol)

	var gotResponse *e4.ResponseError
	require.ErrorAs(t, gatewayError(responseErr), &gotResponse)
	assert.Equal(t, http.StatusBadGateway, gotResponse.StatusCode)
}
