package dashsdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func mintToken(t *testing.T, email string, verified bool, tokenType string, ttl time.Duration) string {
	t.Helper()

	claims := tokenClaims{
		UserID:        "user-1",
		Email:         email,
		TwoFAVerified: verified,
		TokenType:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseTokenClaims(t *testing.T) {
	t.Parallel()

	token := mintToken(t, "trader@example.com", true, "access", time.Hour)

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	require.Equal(t, "trader@example.com", claims.Email)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "access", claims.TokenType)
	require.True(t, claims.TwoFAVerified)
	require.False(t, claims.Expired())
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestParseTokenClaimsExpired(t *testing.T) {
	t.Parallel()

	// ParseUnverified does not validate lifetimes, so an expired token
	// still parses; Expired reports the claim.
	token := mintToken(t, "trader@example.com", false, "pending_2fa", -time.Minute)

	claims, err := ParseTokenClaims(token)
	require.NoError(t, err)
	require.Equal(t, "pending_2fa", claims.TokenType)
	require.True(t, claims.Expired())
}

func TestParseTokenClaimsRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := ParseTokenClaims("not-a-jwt")
	require.Error(t, err)
}
