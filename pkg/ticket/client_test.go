package ticket

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/recap/pkg/config"
)

func testClient(baseURL string) *Client {
	return NewClient(&config.TicketingConfig{
		BaseURL:  baseURL,
		CacheTTL: config.Duration(time.Minute),
		Timeout:  config.Duration(5 * time.Second),
	})
}

func TestLookup_Found(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/tickets/INC-1234", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Record{
			Key:      "INC-1234",
			Summary:  "Checkout latency spike",
			Status:   "resolved",
			Severity: "high",
		})
	}))
	defer srv.Close()

	record, err := testClient(srv.URL).Lookup(context.Background(), "INC-1234")
	require.NoError(t, err)
	assert.Equal(t, "INC-1234", record.Key)
	assert.Equal(t, "resolved", record.Status)
}

func TestLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Lookup(context.Background(), "INC-0000")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestLookup_ServerErrorIsNotNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Lookup(context.Background(), "INC-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTicketNotFound)
}

func TestLookup_CachesResults(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_ = json.NewEncoder(w).Encode(Record{Key: "INC-5", Status: "open"})
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	for i := 0; i < 3; i++ {
		_, err := client.Lookup(context.Background(), "INC-5")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestLookup_CachesNotFound(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := testClient(srv.URL)
	for i := 0; i < 3; i++ {
		_, err := client.Lookup(context.Background(), "INC-404")
		assert.ErrorIs(t, err, ErrTicketNotFound)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestLookup_DisabledWithoutBaseURL(t *testing.T) {
	client := NewClient(nil)

	_, err := client.Lookup(context.Background(), "INC-1")
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestLookup_SendsBearerToken(t *testing.T) {
	t.Setenv("TICKET_API_TOKEN", "secret-token")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(Record{Key: "INC-9"})
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Lookup(context.Background(), "INC-9")
	require.NoError(t, err)
}

func TestCacheExpiry(t *testing.T) {
	c := newCache(10 * time.Millisecond)
	c.set("INC-1", &Record{Key: "INC-1"})

	record, hit := c.get("INC-1")
	require.True(t, hit)
	assert.Equal(t, "INC-1", record.Key)

	time.Sleep(20 * time.Millisecond)
	_, hit = c.get("INC-1")
	assert.False(t, hit)
}
