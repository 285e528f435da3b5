package tempmail

import (
	"errors"
	"fmt"

	"github.com/tempmailhq/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrUnauthorized is returned when the API key is invalid or missing.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ClientError is implemented by all SDK errors.
type ClientError interface {
	error
	TempMailError() // marker method
}

// AuthenticationError indicates the API rejected the credential
// (codes api_key_invalid and api_key_empty).
type AuthenticationError struct {
	Code      string
	Detail    string
	Type      string
	RequestID string
}

func (e *AuthenticationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "authentication failed"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrUnauthorized
}

// TempMailError implements the ClientError interface.
func (e *AuthenticationError) TempMailError() {}

// RateLimitError indicates the API quota has been exhausted (code rate_limited).
type RateLimitError struct {
	Detail    string
	RequestID string
}

func (e *RateLimitError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "rate limit exceeded"
}

// Is implements errors.Is for sentinel error matching.
func (e *RateLimitError) Is(target error) bool {
	return target == ErrRateLimited
}

// TempMailError implements the ClientError interface.
func (e *RateLimitError) TempMailError() {}

// ValidationError indicates invalid request parameters, either detected
// locally before any network call or reported by the server (code
// validation_error). It also covers malformed response payloads such as
// a message missing one of its required fields.
type ValidationError struct {
	Detail    string
	RequestID string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "invalid request parameters"
}

// TempMailError implements the ClientError interface.
func (e *ValidationError) TempMailError() {}

// APIError represents any other non-2xx response from the Temp Mail API.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
	Type       string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("API request failed with status %d", e.StatusCode)
}

// TempMailError implements the ClientError interface.
func (e *APIError) TempMailError() {}

// TransportError represents a network-level failure (connection refused,
// timeout, DNS) after the retry budget has been exhausted.
type TransportError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed after %d attempt(s): %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// TempMailError implements the ClientError interface.
func (e *TransportError) TempMailError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() and errors.As() checks work with the
// public taxonomy.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return &AuthenticationError{
			Code:      authErr.Code,
			Detail:    authErr.Detail,
			Type:      authErr.Type,
			RequestID: authErr.RequestID,
		}
	}

	var rateErr *api.RateLimitError
	if errors.As(err, &rateErr) {
		return &RateLimitError{
			Detail:    rateErr.Detail,
			RequestID: rateErr.RequestID,
		}
	}

	var valErr *api.ValidationError
	if errors.As(err, &valErr) {
		return &ValidationError{
			Detail:    valErr.Detail,
			RequestID: valErr.RequestID,
		}
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Code:       apiErr.Code,
			Detail:     apiErr.Detail,
			Type:       apiErr.Type,
			RequestID:  apiErr.RequestID,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &TransportError{
			Err:      netErr.Err,
			URL:      netErr.URL,
			Attempts: netErr.Attempts,
		}
	}

	return err
}
