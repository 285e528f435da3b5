package tempmail

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL    = "https://api.temp-mail.io"
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	logger     *zap.Logger
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the request timeout. Ignored when a custom HTTP
// client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithRetries sets the retry budget for transport-level failures.
// HTTP error responses are never retried. A negative count disables
// retries. Default: 3.
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryDelay sets the base backoff delay between retries.
// The delay doubles on each attempt. Default: 1 second.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithLogger sets a structured logger for request debugging and retry
// warnings. Default: no logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// CreateEmailOption configures email address creation. The options are
// combinable; the server assigns whatever is left unspecified.
type CreateEmailOption func(url.Values)

// WithEmail requests a specific full email address.
func WithEmail(email string) CreateEmailOption {
	return func(q url.Values) {
		q.Set("email", email)
	}
}

// WithDomain requests an address under a specific domain.
func WithDomain(domain string) CreateEmailOption {
	return func(q url.Values) {
		q.Set("domain", domain)
	}
}

// WithDomainType requests an address under any domain of the given type.
func WithDomainType(domainType DomainType) CreateEmailOption {
	return func(q url.Values) {
		q.Set("domain_type", string(domainType))
	}
}

// ListMessagesOption configures message listing.
type ListMessagesOption func(url.Values)

// WithLimit caps the number of messages returned.
func WithLimit(limit int) ListMessagesOption {
	return func(q url.Values) {
		q.Set("limit", strconv.Itoa(limit))
	}
}

// WithOffset skips the first offset messages.
func WithOffset(offset int) ListMessagesOption {
	return func(q url.Values) {
		q.Set("offset", strconv.Itoa(offset))
	}
}
