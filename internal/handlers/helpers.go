package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/benx421/payment-gateway/e4/internal/api"
	"github.com/benx421/payment-gateway/e4/internal/service"
)

func mapServiceErrorToCode(code string) api.ErrorCode {
	switch code {
	case service.ErrCodeInvalidCard:
		return api.ErrorCodeInvalidCard
	case service.ErrCodeInvalidCVV:
		return api.ErrorCodeInvalidCvv
	case service.ErrCodeInvalidAmount:
		return api.ErrorCodeInvalidAmount
	case service.ErrCodeCardExpired:
		return api.ErrorCodeCardExpired
	case service.ErrCodeInvalidAuthorization:
		return api.ErrorCodeInvalidAuthorization
	case service.ErrCodeGatewayUnavailable:
		return api.ErrorCodeGatewayUnavailable
	case service.ErrCodeGatewayProtocol:
		return api.ErrorCodeGatewayProtocol
	case service.ErrCodeNotFound:
		return api.ErrorCodeNotFound
	default:
		return api.ErrorCodeInternalError
	}
}

func statusForServiceError(code string) int {
	switch code {
	case service.ErrCodeInvalidCard,
		service.ErrCodeInvalidCVV,
		service.ErrCodeInvalidAmount,
		service.ErrCodeCardExpired,
		service.ErrCodeInvalidAuthorization:
		return http.StatusBadRequest
	case service.ErrCodeGatewayUnavailable, service.ErrCodeGatewayProtocol:
		return http.StatusBadGateway
	case service.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func extractServiceError(err error) *service.ServiceError {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		return svcErr
	}
	return nil
}

// writeServiceError maps service errors to appropriate HTTP responses
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	svcErr := extractServiceError(err)
	if svcErr == nil {
		h.logger.Error("unexpected error", "path", r.URL.Path, "error", err)
		api.WriteError(w, http.StatusInternalServerError, api.ErrorCodeInternalError, "internal error")
		return
	}

	status := statusForServiceError(svcErr.Code)
	message := svcErr.Message
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			"path", r.URL.Path,
			"code", svcErr.Code,
			"error", err,
		)
		if status == http.StatusInternalServerError {
			message = "internal error"
		}
	}

	api.WriteError(w, status, mapServiceErrorToCode(svcErr.Code), message)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, "invalid JSON body")
		return false
	}
	return true
}
