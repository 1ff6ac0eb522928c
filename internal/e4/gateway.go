// Package e4 is a client for the First Data Global Gateway E4 transaction API (v11).
package e4

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/payment-gateway/e4/internal/models"
)

// Endpoints of the E4 v11 transaction API
const (
	DefaultTestURL = "https://api.demo.globalgatewaye4.firstdata.com/transaction/v11"
	DefaultLiveURL = "https://api.globalgatewaye4.firstdata.com/transaction/v11"
)

// Config holds the credentials and endpoint selection of a Gateway
type Config struct {
	Login    string
	Password string
	TestURL  string
	LiveURL  string
	Test     bool
}

// Gateway translates payment operations into E4 transactions.
// It holds no mutable state and is safe for concurrent use.
type Gateway struct {
	client Poster
	logger *slog.Logger
	config Config
}

// New creates a Gateway. It fails with a *ConfigError when the login or password is empty.
func New(cfg Config, client Poster, logger *slog.Logger) (*Gateway, error) {
	if cfg.Login == "" {
		return nil, &ConfigError{Field: "login", Err: ErrMissingCredentials}
	}
	if cfg.Password == "" {
		return nil, &ConfigError{Field: "password", Err: ErrMissingCredentials}
	}
	if cfg.TestURL == "" {
		cfg.TestURL = DefaultTestURL
	}
	if cfg.LiveURL == "" {
		cfg.LiveURL = DefaultLiveURL
	}
	if client == nil {
		client = NewHTTPPoster(nil)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		client: client,
		logger: logger.With("gateway", "e4"),
		config: cfg,
	}, nil
}

// Authorize places a hold of money minor units on the card.
func (g *Gateway) Authorize(ctx context.Context, money int64, card models.CreditCard, opts models.Options) (*Result, error) {
	return g.commit(ctx, ActionAuthorize, newCardRequest(money, card, opts))
}

// Purchase charges money minor units to the card.
func (g *Gateway) Purchase(ctx context.Context, money int64, card models.CreditCard, opts models.Options) (*Result, error) {
	return g.commit(ctx, ActionPurchase, newCardRequest(money, card, opts))
}

// Capture completes an earlier authorization for money minor units.
func (g *Gateway) Capture(ctx context.Context, money int64, authorization string, _ models.Options) (*Result, error) {
	auth, err := ParseAuthorization(authorization)
	if err != nil {
		return nil, err
	}

	req, err := newTaggedRequest(money, auth)
	if err != nil {
		return nil, err
	}
	return g.commit(ctx, ActionTaggedCapture, req)
}

// Refund returns money minor units of an earlier purchase or capture.
func (g *Gateway) Refund(ctx context.Context, money int64, authorization string, _ models.Options) (*Result, error) {
	auth, err := ParseAuthorization(authorization)
	if err != nil {
		return nil, err
	}

	req, err := newTaggedRequest(money, auth)
	if err != nil {
		return nil, err
	}
	return g.commit(ctx, ActionTaggedRefund, req)
}

// Void cancels an earlier transaction for the amount recorded in its authorization.
func (g *Gateway) Void(ctx context.Context, authorization string, _ models.Options) (*Result, error) {
	auth, err := ParseAuthorization(authorization)
	if err != nil {
		return nil, err
	}

	req, err := newTaggedRequest(auth.Amount, auth)
	if err != nil {
		return nil, err
	}
	return g.commit(ctx, ActionTaggedVoid, req)
}

// Test reports whether the gateway targets the demo environment.
func (g *Gateway) Test() bool {
	return g.config.Test
}

func (g *Gateway) commit(ctx context.Context, action Action, req Request) (*Result, error) {
	transactionType := TransactionTypeFor(action)

	body, err := g.postData(transactionType, req)
	if err != nil {
		return nil, err
	}

	url := g.url()
	data, err := g.client.Post(ctx, url, body, g.headers())
	if err != nil {
		g.logger.Warn("gateway request failed",
			"action", action,
			"transaction_type", transactionType,
			"url", url,
			"error", err,
		)
		return nil, err
	}

	params, err := parseResponse(data)
	if err != nil {
		g.logger.Error("unparseable gateway response",
			"action", action,
			"transaction_type", transactionType,
			"error", err,
		)
		return nil, err
	}

	result := &Result{
		Success:         successFrom(params),
		Message:         messageFrom(params),
		Params:          params,
		Authorization:   authorizationFrom(params).String(),
		CVVResult:       cvvResultFrom(params),
		Test:            g.config.Test,
		Action:          action,
		TransactionType: transactionType,
	}

	g.logger.Debug("gateway transaction completed",
		"action", action,
		"transaction_type", transactionType,
		"url", url,
		"success", result.Success,
		"bank_message", result.Message,
	)

	return result, nil
}

func (g *Gateway) postData(transactionType TransactionType, req Request) ([]byte, error) {
	post := make(map[string]any, len(req)+3)
	post["gateway_id"] = g.config.Login
	post["Password"] = g.config.Password
	post["transaction_type"] = string(transactionType)
	for key, value := range req {
		post[key] = value
	}

	body, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}
	return body, nil
}

func (g *Gateway) url() string {
	if g.config.Test {
		return g.config.TestURL
	}
	return g.config.LiveURL
}

func (g *Gateway) headers() http.Header {
	header := http.Header{}
	header.Set("Authorization", g.basicAuth())
	header.Set("Accept", "application/json")
	header.Set("Content-Type", "application/json")
	return header
}

func (g *Gateway) basicAuth() string {
	credentials := g.config.Login + ":" + g.config.Password
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}
