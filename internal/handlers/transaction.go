package handlers

import (
	"net/http"

	"github.com/benx421/payment-gateway/e4/internal/api"
	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetTransaction handles GET /api/v1/transactions/{transactionId}
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	var transactionID openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "transactionId", chi.URLParam(r, "transactionId"), &transactionID, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		api.WriteError(w, http.StatusBadRequest, api.ErrorCodeInvalidRequest, "invalid transaction ID")
		return
	}

	entry, err := h.payments.GetTransaction(r.Context(), transactionID)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	api.WriteJSON(w, http.StatusOK, toTransactionResponse(entry))
}
