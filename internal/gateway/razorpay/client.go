// Package razorpay implements the payment-gateway contract against the
// Razorpay REST API.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.razorpay.com"
	defaultTimeout = 15 * time.Second
	defaultRPS     = 10
)

type (
	// Metrics records duration and outcome of gateway calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Config carries gateway credentials and call limits. TestMode selects the
// test key pair and simulates payouts, mirroring environments where the
// payouts product is not enabled.
type Config struct {
	KeyID             string
	KeySecret         string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond int
	TestMode          bool
}

// Client is an instrumented, rate-limited Razorpay REST client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	keyID      string
	keySecret  string
	testMode   bool
	limiter    ratelimit.Limiter
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewClient builds a Client from explicit configuration; credentials are
// never read from the environment here.
func NewClient(cfg Config, metrics Metrics, logger *zap.Logger) (*Client, error) {
	if cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, errors.New("gateway key id and secret are required")
	}
	if metrics == nil {
		return nil, errors.New("gateway metrics is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRPS
	}

	mode := "live"
	if cfg.TestMode {
		mode = "test"
	}
	logger = logger.Named("razorpay").With(zap.String("mode", mode))
	logger.Info("gateway client configured")

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		keyID:      cfg.KeyID,
		keySecret:  cfg.KeySecret,
		testMode:   cfg.TestMode,
		limiter:    ratelimit.New(cfg.RequestsPerSecond),
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}, nil
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// post sends a JSON request and returns the raw response body alongside the
// decoded payload so callers can keep it for audit.
func (c *Client) post(ctx context.Context, path string, body, out any) (string, error) {
	c.limiter.Take()

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ae apiError
		if jsonErr := json.Unmarshal(raw, &ae); jsonErr == nil && ae.Error.Description != "" {
			return string(raw), fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, ae.Error.Description)
		}
		return string(raw), fmt.Errorf("%s returned %d", path, resp.StatusCode)
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return string(raw), fmt.Errorf("decode response from %s: %w", path, err)
	}
	return string(raw), nil
}
