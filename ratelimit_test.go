package tempmail

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LastRateLimit_AbsentBeforeFirstCall(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, ok := client.LastRateLimit()
	assert.False(t, ok)
}

func TestClient_SnapshotUpdatedFromHeaders(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratelimit-Limit", "100")
		w.Header().Set("X-Ratelimit-Remaining", "95")
		w.Header().Set("X-Ratelimit-Reset", "1640995200")
		w.Header().Set("X-Ratelimit-Used", "5")
		w.Write([]byte(`{"domains":[]}`))
	})

	_, err := client.ListDomains(context.Background())
	require.NoError(t, err)

	rl, ok := client.LastRateLimit()
	require.True(t, ok)
	assert.Equal(t, RateLimit{Limit: 100, Remaining: 95, Reset: 1640995200, Used: 5}, rl)
}

func TestClient_GetRateLimit_FromBodyDespiteMalformedHeaders(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/rate_limit", r.URL.Path)
		w.Header().Set("X-Ratelimit-Limit", "not-a-number")
		w.Write([]byte(`{"limit":100,"remaining":42,"used":58,"reset":1700000000}`))
	})

	rl, err := client.GetRateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &RateLimit{Limit: 100, Remaining: 42, Used: 58, Reset: 1700000000}, rl)

	stored, ok := client.LastRateLimit()
	require.True(t, ok)
	assert.Equal(t, *rl, stored)
}

func TestClient_GetRateLimit_OverwritesHeaderSnapshot(t *testing.T) {
	client, _ := newServerClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/rate_limit" {
			w.Write([]byte(`{"limit":100,"remaining":50,"used":50,"reset":1700000000}`))
			return
		}
		w.Header().Set("X-Ratelimit-Limit", "100")
		w.Header().Set("X-Ratelimit-Remaining", "99")
		w.Header().Set("X-Ratelimit-Reset", "1640995200")
		w.Header().Set("X-Ratelimit-Used", "1")
		w.Write([]byte(`{"domains":[]}`))
	})

	ctx := context.Background()

	_, err := client.ListDomains(ctx)
	require.NoError(t, err)

	rl, ok := client.LastRateLimit()
	require.True(t, ok)
	assert.Equal(t, 99, rl.Remaining)

	_, err = client.GetRateLimit(ctx)
	require.NoError(t, err)

	rl, ok = client.LastRateLimit()
	require.True(t, ok)
	assert.Equal(t, 50, rl.Remaining, "body-derived value must replace the header snapshot")
}
