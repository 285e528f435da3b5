package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error codes returned inside the API error envelope.
const (
	CodeAPIKeyInvalid = "api_key_invalid"
	CodeAPIKeyEmpty   = "api_key_empty"
	CodeRateLimited   = "rate_limited"
	CodeValidation    = "validation_error"
)

// Common API errors that can be checked with errors.Is.
var (
	// ErrUnauthorized indicates the API key is invalid or missing.
	ErrUnauthorized = errors.New("invalid or missing API key")
	// ErrRateLimited indicates the rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// errorEnvelope is the nested error shape returned by the API:
// {"error": {"code", "detail", "type"}, "meta": {"request_id"}}.
type errorEnvelope struct {
	Error struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
		Type   string `json:"type"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

// AuthError indicates the API rejected the credential.
type AuthError struct {
	Code      string
	Detail    string
	Type      string
	RequestID string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return "authentication failed"
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthError) Is(target error) bool {
	return target == ErrUnauthorized
}

// RateLimitError indicates the API quota has been exhausted.
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

// ValidationError indicates the API rejected the request parameters.
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

// APIError represents any other non-2xx response from the API.
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

// NetworkError represents a transport-level failure after the retry
// budget has been exhausted.
type NetworkError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// parseErrorResponse maps a non-2xx response body onto the error
// taxonomy. Bodies that do not look like the error envelope fall back
// to a plain APIError carrying the status code and raw text.
func parseErrorResponse(statusCode int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Error.Code != "" {
		switch env.Error.Code {
		case CodeAPIKeyInvalid, CodeAPIKeyEmpty:
			return &AuthError{
				Code:      env.Error.Code,
				Detail:    env.Error.Detail,
				Type:      env.Error.Type,
				RequestID: env.Meta.RequestID,
			}
		case CodeRateLimited:
			return &RateLimitError{
				Detail:    env.Error.Detail,
				RequestID: env.Meta.RequestID,
			}
		case CodeValidation:
			return &ValidationError{
				Detail:    env.Error.Detail,
				RequestID: env.Meta.RequestID,
			}
		}
		return &APIError{
			StatusCode: statusCode,
			Code:       env.Error.Code,
			Detail:     env.Error.Detail,
			Type:       env.Error.Type,
			RequestID:  env.Meta.RequestID,
		}
	}

	return &APIError{
		StatusCode: statusCode,
		Detail:     strings.TrimSpace(string(body)),
	}
}
