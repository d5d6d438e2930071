package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClaims(userID string, expiresIn time.Duration) AccessClaims {
	now := time.Now()
	return AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			Issuer:    "foodcourt-api",
			Audience:  jwt.ClaimStrings{"foodcourt-api"},
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "foodcourt-api", "foodcourt-api")

	tokenStr, err := authenticator.GenerateToken(newTestClaims("user-123", time.Hour))
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	parsed := &AccessClaims{}
	_, err = authenticator.ValidateTokenWithClaims(tokenStr, parsed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", parsed.UserID)
	assert.Equal(t, "user-123", parsed.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "foodcourt-api", "foodcourt-api")

	tokenStr, err := authenticator.GenerateToken(newTestClaims("user-123", -time.Minute))
	require.NoError(t, err)

	_, err = authenticator.ValidateTokenWithClaims(tokenStr, &AccessClaims{})
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	signer := NewJWTAuthenticator("right-secret", "foodcourt-api", "foodcourt-api")
	verifier := NewJWTAuthenticator("wrong-secret", "foodcourt-api", "foodcourt-api")

	tokenStr, err := signer.GenerateToken(newTestClaims("user-123", time.Hour))
	require.NoError(t, err)

	_, err = verifier.ValidateTokenWithClaims(tokenStr, &AccessClaims{})
	assert.Error(t, err)
}

func TestValidateToken_WrongAudience(t *testing.T) {
	signer := NewJWTAuthenticator("test-secret", "other-api", "other-api")
	verifier := NewJWTAuthenticator("test-secret", "foodcourt-api", "foodcourt-api")

	claims := newTestClaims("user-123", time.Hour)
	claims.Issuer = "other-api"
	claims.Audience = jwt.ClaimStrings{"other-api"}

	tokenStr, err := signer.GenerateToken(claims)
	require.NoError(t, err)

	_, err = verifier.ValidateTokenWithClaims(tokenStr, &AccessClaims{})
	assert.Error(t, err)
}

func TestValidateToken_Malformed(t *testing.T) {
	authenticator := NewJWTAuthenticator("test-secret", "foodcourt-api", "foodcourt-api")

	_, err := authenticator.ValidateTokenWithClaims("not.a.jwt", &AccessClaims{})
	assert.Error(t, err)
}
