package e4

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentials indicates the gateway was configured without a login or password
	ErrMissingCredentials = errors.New("missing required credentials")

	// ErrMalformedAuthorization indicates an authorization string that this gateway did not produce
	ErrMalformedAuthorization = errors.New("malformed authorization")
)

// ConfigError is returned by New when the gateway configuration is unusable
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("e4: invalid configuration: %s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ProtocolError is returned when the gateway replies with a body that is not a JSON object
type ProtocolError struct {
	Err  error
	Body []byte
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("e4: invalid response body: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// ResponseError is returned by HTTPPoster for non-2xx replies
type ResponseError struct {
	Status     string
	Body       []byte
	StatusCode int
}

func (e *ResponseError) Error() string {
	return "Failed with " + e.Status
}
