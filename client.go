package tempmail

import (
	"sync"

	"github.com/tempmailhq/client-go/internal/api"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

// Client is the main Temp Mail client. It is safe for concurrent use;
// the only shared mutable state is the last observed rate-limit
// snapshot, which is guarded internally.
type Client struct {
	api *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a new Temp Mail client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:    defaultBaseURL,
		timeout:    defaultTimeout,
		retries:    defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		HTTPClient: cfg.httpClient,
		Timeout:    cfg.timeout,
		MaxRetries: cfg.retries,
		RetryDelay: cfg.retryDelay,
		UserAgent:  "temp-mail-go/" + Version,
		Logger:     cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Client{api: apiClient}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Close releases the underlying transport resources. Calls made after
// Close fail fast with ErrClientClosed instead of attempting network I/O.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.api.Close()
	return nil
}
