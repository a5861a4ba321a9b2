package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/invoice-lottery/internal/mocks"
)

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := New(Config{AllowedOrigins: []string{"https://app.example.com"}}, mocks.NewMockAPIExecutor(ctrl))
	router := s.Router()

	t.Run("health", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("cors preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/pools", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestShutdownBeforeStart(t *testing.T) {
	s := New(Config{}, nil)
	assert.NoError(t, s.Shutdown(context.Background()))
}
