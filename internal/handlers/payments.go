package handlers

import (
	"net/http"

	"github.com/benx421/payment-gateway/e4/internal/api"
)

// CreateAuthorization handles POST /api/v1/authorizations
func (h *Handler) CreateAuthorization(w http.ResponseWriter, r *http.Request) {
	var body api.CreateAuthorizationJSONRequestBody
	if !decodeBody(w, r, &body) {
		return
	}

	entry, err := h.payments.Authorize(r.Context(), toCardPaymentInput(body))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toTransactionResponse(entry))
}

// CreatePurchase handles POST /api/v1/purchases
func (h *Handler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	var body api.CreatePurchaseJSONRequestBody
	if !decodeBody(w, r, &body) {
		return
	}

	entry, err := h.payments.Purchase(r.Context(), toCardPaymentInput(body))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toTransactionResponse(entry))
}

// CreateCapture handles POST /api/v1/captures
func (h *Handler) CreateCapture(w http.ResponseWriter, r *http.Request) {
	var body api.CreateCaptureJSONRequestBody
	if !decodeBody(w, r, &body) {
		return
	}

	entry, err := h.payments.Capture(r.Context(), toFollowUpInput(body))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toTransactionResponse(entry))
}

// CreateRefund handles POST /api/v1/refunds
func (h *Handler) CreateRefund(w http.ResponseWriter, r *http.Request) {
	var body api.CreateRefundJSONRequestBody
	if !decodeBody(w, r, &body) {
		return
	}

	entry, err := h.payments.Refund(r.Context(), toFollowUpInput(body))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toTransactionResponse(entry))
}

// CreateVoid handles POST /api/v1/voids
func (h *Handler) CreateVoid(w http.ResponseWriter, r *http.Request) {
	var body api.CreateVoidJSONRequestBody
	if !decodeBody(w, r, &body) {
		return
	}

	entry, err := h.payments.Void(r.Context(), toVoidInput(body))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toTransactionResponse(entry))
}
