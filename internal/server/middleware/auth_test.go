package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/notekeeper/internal/server/handlers"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelError,
	}
	handler := slog.NewTextHandler(os.Stdout, opts)
	return slog.New(handler)
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: time.Hour,
	}
}

// identityHandler is a simple handler that checks context values
func identityHandler(t *testing.T, expectedUserID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	logger := setupTestLogger()
	jwtConfig := testJWTConfig()

	// Generate valid token
	token, _, err := handlers.GenerateAccessToken(jwtConfig, "user123")
	require.NoError(t, err)

	authMiddleware := AuthMiddleware(logger, jwtConfig)
	wrappedHandler := authMiddleware(identityHandler(t, "user123"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestAuthMiddleware_MissingAuthHeader(t *testing.T) {
	logger := setupTestLogger()
	authMiddleware := AuthMiddleware(logger, testJWTConfig())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})
	wrappedHandler := authMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	// No Authorization header

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing token")
}

func TestAuthMiddleware_InvalidAuthHeaderFormat(t *testing.T) {
	logger := setupTestLogger()
	authMiddleware := AuthMiddleware(logger, testJWTConfig())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})
	wrappedHandler := authMiddleware(handler)

	tests := []struct {
		name   string
		header string
	}{
		{name: "no bearer prefix", header: "some-token"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set("Authorization", tt.header)

			w := httptest.NewRecorder()
			wrappedHandler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "invalid token format")
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	logger := setupTestLogger()
	authMiddleware := AuthMiddleware(logger, testJWTConfig())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})
	wrappedHandler := authMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-valid-jwt")

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	logger := setupTestLogger()

	// Токен с истекшим сроком действия
	expiredConfig := handlers.JWTConfig{
		Secret:         []byte("test-secret-key"),
		AccessTokenTTL: -time.Hour,
	}
	token, _, err := handlers.GenerateAccessToken(expiredConfig, "user123")
	require.NoError(t, err)

	authMiddleware := AuthMiddleware(logger, testJWTConfig())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})
	wrappedHandler := authMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_TokenSignedWithDifferentSecret(t *testing.T) {
	logger := setupTestLogger()

	otherConfig := handlers.JWTConfig{
		Secret:         []byte("another-secret"),
		AccessTokenTTL: time.Hour,
	}
	token, _, err := handlers.GenerateAccessToken(otherConfig, "user123")
	require.NoError(t, err)

	authMiddleware := AuthMiddleware(logger, testJWTConfig())

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("Handler should not be called")
	})
	wrappedHandler := authMiddleware(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	wrappedHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
