package tempmail

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_AuthenticationError(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"api_key_invalid","detail":"API token is invalid"}}`))
	})

	_, err := client.ListDomains(context.Background())

	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "API token is invalid", err.Error())
	assert.Equal(t, "api_key_invalid", authErr.Code)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_RateLimitError(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"rate_limited","detail":"Rate limit exceeded, retry in 60s"},"meta":{"request_id":"req-9"}}`))
	})

	_, err := client.CreateEmail(context.Background())

	var rateErr *RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "Rate limit exceeded, retry in 60s", rateErr.Detail)
	assert.Equal(t, "req-9", rateErr.RequestID)
	assert.ErrorIs(t, err, ErrRateLimited)
}

func TestClient_ServerValidationError(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":"validation_error","detail":"domain is not allowed"}}`))
	})

	_, err := client.CreateEmail(context.Background(), WithDomain("forbidden.example"))

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "domain is not allowed", err.Error())
}

func TestClient_APIError_UnknownCode(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":"not_found","detail":"message not found"},"meta":{"request_id":"req-7"}}`))
	})

	_, err := client.GetMessage(context.Background(), "gone")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "not_found", apiErr.Code)
	assert.Equal(t, "req-7", apiErr.RequestID)
	assert.Equal(t, "API error 404: message not found", err.Error())
}

func TestClient_APIError_NonEnvelopeBody(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := client.ListDomains(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 502, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Detail)
}

func TestClient_TransportError(t *testing.T) {
	// Point at a closed port so every attempt fails at the transport level.
	client, err := New("test-key",
		WithBaseURL("http://127.0.0.1:1"),
		WithRetries(1),
		WithRetryDelay(time.Millisecond),
	)
	require.NoError(t, err)
	defer client.Close()

	_, err = client.ListDomains(context.Background())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, 2, transportErr.Attempts)
	assert.NotNil(t, transportErr.Unwrap())
}

func TestClientError_Marker(t *testing.T) {
	// Every public error type participates in the ClientError interface
	// so callers can catch broadly.
	errs := []error{
		&AuthenticationError{},
		&RateLimitError{},
		&ValidationError{},
		&APIError{StatusCode: 500},
		&TransportError{Err: errors.New("refused"), Attempts: 1},
	}

	for _, err := range errs {
		var clientErr ClientError
		assert.ErrorAs(t, err, &clientErr, "%T should implement ClientError", err)
	}
}

func TestErrorMessages_Fallbacks(t *testing.T) {
	assert.Equal(t, "authentication failed", (&AuthenticationError{}).Error())
	assert.Equal(t, "rate limit exceeded", (&RateLimitError{}).Error())
	assert.Equal(t, "invalid request parameters", (&ValidationError{}).Error())
	assert.Equal(t, "API request failed with status 500", (&APIError{StatusCode: 500}).Error())
}
