package e4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"html error page", "<html>Bad Gateway</html>"},
		{"truncated object", `{"transaction_approved":1`},
		{"array", `[1,2]`},
		{"null", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parseResponse([]byte(tt.body))

			assert.Nil(t, params)
			var protoErr *ProtocolError
			require.ErrorAs(t, err, &protoErr)
			assert.Equal(t, []byte(tt.body), protoErr.Body)
		})
	}
}

func TestSuccessFrom(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{"approved", `{"transaction_approved":1}`, true},
		{"declined", `{"transaction_approved":0}`, false},
		{"missing", `{"bank_message":"Approved"}`, false},
		{"string one", `{"transaction_approved":"1"}`, false},
		{"boolean true", `{"transaction_approved":true}`, false},
		{"float one", `{"transaction_approved":1.0}`, false},
		{"two", `{"transaction_approved":2}`, false},
		{"null", `{"transaction_approved":null}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parseResponse([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, successFrom(params))
		})
	}
}

func TestMessageFrom(t *testing.T) {
	params, err := parseResponse([]byte(`{"bank_message":"Approved"}`))
	require.NoError(t, err)
	assert.Equal(t, "Approved", messageFrom(params))

	params, err = parseResponse([]byte(`{"transaction_approved":0}`))
	require.NoError(t, err)
	assert.Empty(t, messageFrom(params))
}

func TestCVVResultFrom(t *testing.T) {
	params, err := parseResponse([]byte(`{"cvv2":"M"}`))
	require.NoError(t, err)
	assert.Equal(t, "M", cvvResultFrom(params))

	params, err = parseResponse([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, cvvResultFrom(params))
}
