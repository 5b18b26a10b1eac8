package dashsdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims the backend embeds in its tokens, extracted
// without signature verification. They are display data only (the CLI's
// whoami output, expiry hints); authorization decisions always belong to
// the backend, which does verify the signature.
type TokenClaims struct {
	UserID        string
	Email         string
	TwoFAVerified bool
	TokenType     string
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// Expired reports whether the token's expiry claim has passed. A token
// without an expiry claim is treated as not expired; the backend is the
// authority either way.
func (t *TokenClaims) Expired() bool {
	return !t.ExpiresAt.IsZero() && time.Now().After(t.ExpiresAt)
}

type tokenClaims struct {
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	TwoFAVerified bool   `json:"twoFAVerified"`
	TokenType     string `json:"tokenType"`
	jwt.RegisteredClaims
}

// ParseTokenClaims extracts the claims from a backend-issued token without
// verifying its signature.
func ParseTokenClaims(token string) (*TokenClaims, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	out := &TokenClaims{
		UserID:        claims.UserID,
		Email:         claims.Email,
		TwoFAVerified: claims.TwoFAVerified,
		TokenType:     claims.TokenType,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
