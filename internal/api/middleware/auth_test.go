package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	publicPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return key, string(publicPEM)
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := generateKeyPair(t)
	otherKey, _ := generateKeyPair(t)
	cfg := AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"", "key-1", "key-2"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	expired := signToken(t, key, jwt.RegisteredClaims{
		Subject:   "operator",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	})
	foreign := signToken(t, otherKey, jwt.RegisteredClaims{Subject: "intruder"})

	tests := []struct {
		name     string
		header   string
		cfg      AuthConfig
		success  bool
		authType string
		subject  string
	}{
		{name: "valid jwt", header: "Bearer " + valid, cfg: cfg, success: true, authType: AUTH_TYPE_JWT, subject: "operator"},
		{name: "expired jwt", header: "Bearer " + expired, cfg: cfg},
		{name: "jwt signed by another key", header: "Bearer " + foreign, cfg: cfg},
		{name: "jwt without configured key", header: "Bearer " + valid, cfg: AuthConfig{APIKeys: []string{"key-1"}}},
		{name: "valid api key", header: "ApiKey key-2", cfg: cfg, success: true, authType: AUTH_TYPE_APIKEY},
		{name: "scheme is case insensitive", header: "apikey key-1", cfg: cfg, success: true, authType: AUTH_TYPE_APIKEY},
		{name: "invalid api key", header: "ApiKey nope", cfg: cfg},
		{name: "empty configured key never matches", header: "ApiKey ", cfg: cfg},
		{name: "no api keys configured", header: "ApiKey key-1", cfg: AuthConfig{}},
		{name: "missing header", header: "", cfg: cfg},
		{name: "malformed header", header: "Bearer", cfg: cfg},
		{name: "unsupported scheme", header: "Basic dXNlcjpwYXNz", cfg: cfg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Authenticate(tt.header, tt.cfg)
			assert.Equal(t, tt.success, result.Success)
			if !tt.success {
				assert.Error(t, result.Error)
				return
			}
			assert.NoError(t, result.Error)
			assert.Equal(t, tt.authType, result.AuthType)
			assert.Equal(t, tt.subject, result.AuthSubject)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/secure", Auth(AuthConfig{APIKeys: []string{"secret"}}), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(AUTH_TYPE_KEY))
	})

	t.Run("rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthorized")
	})

	t.Run("accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "ApiKey secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, AUTH_TYPE_APIKEY, w.Body.String())
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery(), Logger())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}
