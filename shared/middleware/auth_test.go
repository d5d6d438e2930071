package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mavesys/foodcourt-api/shared/auth"
)

func newTestAuthenticator() auth.JWTAuthenticator {
	return auth.NewJWTAuthenticator("test-secret", "foodcourt-api", "foodcourt-api")
}

func signTestToken(t *testing.T, authenticator auth.JWTAuthenticator, userID string, expiresIn time.Duration) string {
	t.Helper()

	now := time.Now()
	tokenStr, err := authenticator.GenerateToken(auth.AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			Issuer:    "foodcourt-api",
			Audience:  jwt.ClaimStrings{"foodcourt-api"},
		},
	})
	require.NoError(t, err)
	return tokenStr
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	handler := RequireAuth(newTestAuthenticator())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied, no token provided", decodeMessage(t, rec))
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	handler := RequireAuth(newTestAuthenticator())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeMessage(t, rec))
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	authenticator := newTestAuthenticator()
	handler := RequireAuth(authenticator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, authenticator, "user-123", -time.Minute))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeMessage(t, rec))
}

func TestRequireAuth_ValidToken(t *testing.T) {
	authenticator := newTestAuthenticator()

	var gotUserID string
	handler := RequireAuth(authenticator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+signTestToken(t, authenticator, "user-123", time.Hour))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", gotUserID)
}
