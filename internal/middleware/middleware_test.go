package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/benx421/payment-gateway/e4/internal/api"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body)) //nolint:errcheck // test helper
	})
}

func TestAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		header     string
		path       string
		wantStatus int
	}{
		{name: "valid key", key: "secret", header: "secret", path: "/api/v1/purchases", wantStatus: http.StatusOK},
		{name: "missing key", key: "secret", path: "/api/v1/purchases", wantStatus: http.StatusUnauthorized},
		{name: "wrong key", key: "secret", header: "guess", path: "/api/v1/purchases", wantStatus: http.StatusUnauthorized},
		{name: "health is public", key: "secret", path: "/health", wantStatus: http.StatusOK},
		{name: "docs are public", key: "secret", path: "/docs/openapi", wantStatus: http.StatusOK},
		{name: "disabled without key", key: "", path: "/api/v1/purchases", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := APIKey(tt.key, testLogger())(testHandler(http.StatusOK, "ok"))

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("X-API-Key", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				var resp api.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, api.ErrorCodeUnauthorized, resp.Error)
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := chimiddleware.RequestID(RequestLogger(logger)(testHandler(http.StatusBadGateway, "upstream")))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/purchases", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "http request", line["msg"])
	assert.Equal(t, "POST", line["method"])
	assert.Equal(t, "/api/v1/purchases", line["path"])
	assert.Equal(t, float64(http.StatusBadGateway), line["status"])
	assert.Equal(t, float64(len("upstream")), line["bytes"])
	assert.NotEmpty(t, line["request_id"])
}

func TestRequestLogger_DefaultStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}")) //nolint:errcheck // test helper
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
}
