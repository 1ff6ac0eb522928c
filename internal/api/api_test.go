package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetSwagger(t *testing.T) {
	doc, err := GetSwagger()
	require.NoError(t, err)

	for _, path := range []string{
		"/health",
		"/api/v1/authorizations",
		"/api/v1/purchases",
		"/api/v1/captures",
		"/api/v1/refunds",
		"/api/v1/voids",
		"/api/v1/transactions/{transactionId}",
	} {
		assert.NotNil(t, doc.Paths.Find(path), path)
	}
	assert.Empty(t, doc.Servers)
}

func newValidatedHandler(t *testing.T) (http.Handler, *string) {
	t.Helper()

	doc, err := GetSwagger()
	require.NoError(t, err)

	validate, err := RequestValidator(doc, testLogger())
	require.NoError(t, err)

	var body string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body) //nolint:errcheck // test handler
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	})

	return validate(next), &body
}

func TestRequestValidator(t *testing.T) {
	validPurchase := `{"amount":100,"card":{"number":"4111111111111111","first_name":"Longbob","last_name":"Longsen","expiry_month":9,"expiry_year":2030}}`

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "valid purchase", method: http.MethodPost, path: "/api/v1/purchases", body: validPurchase, wantStatus: http.StatusNoContent},
		{name: "missing card", method: http.MethodPost, path: "/api/v1/purchases", body: `{"amount":100}`, wantStatus: http.StatusBadRequest},
		{name: "zero amount", method: http.MethodPost, path: "/api/v1/captures", body: `{"amount":0,"authorization":"a;1;2"}`, wantStatus: http.StatusBadRequest},
		{name: "amount as string", method: http.MethodPost, path: "/api/v1/refunds", body: `{"amount":"1.00","authorization":"a;1;2"}`, wantStatus: http.StatusBadRequest},
		{name: "void without authorization", method: http.MethodPost, path: "/api/v1/voids", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "valid void", method: http.MethodPost, path: "/api/v1/voids", body: `{"authorization":"ET1;100;2"}`, wantStatus: http.StatusNoContent},
		{name: "undocumented path passes through", method: http.MethodGet, path: "/docs", wantStatus: http.StatusNoContent},
		{name: "wrong method", method: http.MethodGet, path: "/api/v1/voids", wantStatus: http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newValidatedHandler(t)

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if rec.Code >= http.StatusBadRequest {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, ErrorCodeInvalidRequest, resp.Error)
			}
		})
	}
}

func TestRequestValidator_PreservesBody(t *testing.T) {
	handler, body := newValidatedHandler(t)

	payload := `{"authorization":"ET1;100;2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/voids", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.JSONEq(t, payload, *body)
}

func TestDocsRoutes(t *testing.T) {
	r := chi.NewRouter()
	RegisterDocsRoutes(r)

	t.Run("root redirects to docs", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusMovedPermanently, rec.Code)
		assert.Equal(t, "/docs", rec.Header().Get("Location"))
	})

	t.Run("swagger ui", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger-ui")
	})

	t.Run("openapi document", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/openapi", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var doc map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, "3.0.3", doc["openapi"])
	})
}
