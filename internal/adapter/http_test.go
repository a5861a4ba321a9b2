package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
		MaxElapsedTime:  500 * time.Millisecond,
	}
}

func TestRealHTTPClient_GetJSON(t *testing.T) {
	t.Run("retries 429 then decodes", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(`{"value":"ok"}`))
		}))
		defer srv.Close()

		client := NewHTTPClient(time.Second, fastRetry())
		var result struct {
			Value string `json:"value"`
		}
		require.NoError(t, client.GetJSON(context.Background(), srv.URL, &result))
		assert.Equal(t, "ok", result.Value)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry 404", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := NewHTTPClient(time.Second, fastRetry())
		var result map[string]interface{}
		err := client.GetJSON(context.Background(), srv.URL, &result)
		assert.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestRealHTTPClient_PostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "sha256=abc", r.Header.Get("X-Signature"))
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	client := NewHTTPClient(time.Second, fastRetry())
	resp, err := client.PostJSON(context.Background(), srv.URL, map[string]string{"X-Signature": "sha256=abc"}, []byte(`{"a":1}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(resp))
}
