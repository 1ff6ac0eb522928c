package e4

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

// Poster sends a request body to the gateway and returns the response body.
// Implementations return an error for connection failures and non-2xx replies.
type Poster interface {
	Post(ctx context.Context, url string, body []byte, header http.Header) ([]byte, error)
}

// HTTPPoster is the net/http implementation of Poster
type HTTPPoster struct {
	client *http.Client
}

// NewHTTPPoster creates an HTTPPoster. A nil client uses http.DefaultClient.
func NewHTTPPoster(client *http.Client) *HTTPPoster {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPPoster{client: client}
}

// Post issues a single POST request; it does not retry.
func (p *HTTPPoster) Post(ctx context.Context, url string, body []byte, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // body close error is not actionable

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ResponseError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       data,
		}
	}

	return data, nil
}
