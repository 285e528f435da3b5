package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Default client configuration values.
const (
	DefaultBaseURL    = "https://api.temp-mail.io"
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// Config configures the API client.
type Config struct {
	// BaseURL is the API base URL. Defaults to DefaultBaseURL.
	BaseURL string
	// APIKey is the credential sent in the X-API-Key header. Required.
	APIKey string
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// Timeout applies to the default HTTP client only.
	Timeout time.Duration
	// MaxRetries is the retry budget for transport-level failures.
	// HTTP error responses are never retried. Zero means the default;
	// a negative value disables retries.
	MaxRetries int
	// RetryDelay is the base backoff delay; it doubles on each attempt.
	RetryDelay time.Duration
	// UserAgent is sent in the User-Agent header.
	UserAgent string
	// Logger receives per-request debug logs and retry warnings.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// Client is the HTTP API client. It is the single choke point for every
// outbound request and owns the last observed rate-limit snapshot.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	userAgent  string
	logger     *zap.Logger

	mu        sync.Mutex
	rateLimit *RateLimit
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	} else if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		userAgent:  cfg.UserAgent,
		logger:     cfg.Logger,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Close releases idle transport connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// LastRateLimit returns the most recently observed rate-limit snapshot.
// ok is false until a snapshot has been observed.
func (c *Client) LastRateLimit() (RateLimit, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.rateLimit == nil {
		return RateLimit{}, false
	}
	return *c.rateLimit, true
}

// SetRateLimit replaces the stored snapshot wholesale.
func (c *Client) SetRateLimit(rl RateLimit) {
	c.mu.Lock()
	c.rateLimit = &rl
	c.mu.Unlock()
}

// Do issues a request and decodes the JSON response body into result.
// A nil result discards the body.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	data, err := c.do(ctx, method, path, query, body, true)
	if err != nil {
		return err
	}
	if result != nil && len(data) > 0 {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// DoRaw issues a request and returns the raw response bytes. Used for
// binary downloads where the body is not JSON.
func (c *Client) DoRaw(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, method, path, query, nil, true)
}

// GetRateLimit fetches the current quota from the dedicated endpoint.
// The snapshot is replaced with the body-decoded value; the header
// update path is bypassed because this endpoint's headers may be stale
// or absent.
func (c *Client) GetRateLimit(ctx context.Context) (*RateLimit, error) {
	data, err := c.do(ctx, http.MethodGet, "/v1/rate_limit", nil, nil, false)
	if err != nil {
		return nil, err
	}

	var rl RateLimit
	if err := json.Unmarshal(data, &rl); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.SetRateLimit(rl)
	return &rl, nil
}

// do performs the request with retries. Retries apply only to
// transport-level failures; a well-formed HTTP error response is
// terminal on first occurrence. Each retry reissues the identical
// method, URL and body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}, updateRateLimit bool) ([]byte, error) {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	requestID := uuid.NewString()

	for attempt := 0; ; attempt++ {
		data, statusCode, header, err := c.attempt(ctx, method, reqURL, payload, requestID)
		if err != nil {
			if attempt >= c.maxRetries {
				return nil, &NetworkError{Err: err, URL: reqURL, Attempts: attempt + 1}
			}
			delay := c.retryDelay * time.Duration(1<<attempt)
			c.logger.Warn("request failed, retrying",
				zap.String("method", method),
				zap.String("url", reqURL),
				zap.String("request_id", requestID),
				zap.Int("attempt", attempt+1),
				zap.Duration("delay", delay),
				zap.Error(err))
			if err := sleep(ctx, delay); err != nil {
				return nil, &NetworkError{Err: err, URL: reqURL, Attempts: attempt + 1}
			}
			continue
		}

		if updateRateLimit {
			c.updateRateLimitFromHeaders(header)
		}

		if statusCode >= 200 && statusCode < 300 {
			return data, nil
		}
		return nil, parseErrorResponse(statusCode, data)
	}
}

// attempt performs a single round trip and reads the full body.
func (c *Client) attempt(ctx context.Context, method, reqURL string, payload []byte, requestID string) ([]byte, int, http.Header, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, 0, nil, err
	}

	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, nil, err
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", reqURL),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	return data, resp.StatusCode, resp.Header, nil
}

// updateRateLimitFromHeaders replaces the snapshot from the
// X-Ratelimit-* response headers. Limit, remaining and reset must all
// parse or the snapshot is left unchanged; a malformed header never
// surfaces as an error. The used header is optional.
func (c *Client) updateRateLimitFromHeaders(header http.Header) {
	limit, err := strconv.Atoi(header.Get("X-Ratelimit-Limit"))
	if err != nil {
		return
	}
	remaining, err := strconv.Atoi(header.Get("X-Ratelimit-Remaining"))
	if err != nil {
		return
	}
	reset, err := strconv.Atoi(header.Get("X-Ratelimit-Reset"))
	if err != nil {
		return
	}
	used, _ := strconv.Atoi(header.Get("X-Ratelimit-Used"))

	c.SetRateLimit(RateLimit{
		Limit:     limit,
		Remaining: remaining,
		Reset:     reset,
		Used:      used,
	})
}

// sleep waits for the given delay or until the context is cancelled.
func sleep(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
