// Package jwtmw provides bearer-token issuance, verification and the gin
// middleware guarding protected routes.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer defines the interface for bearer-token issuance.
type Issuer interface {
	// IssueToken creates a signed token identifying the given user.
	IssueToken(userID string) (string, error)
}

// Verifier defines the interface for bearer-token verification.
type Verifier interface {
	// VerifyToken checks signature and expiry, returning the subject user id.
	VerifyToken(token string) (string, error)
}

// TokenService signs and verifies HS256 tokens with a single process-wide
// secret injected at construction. Rotating the secret invalidates every
// previously issued token.
type TokenService struct {
	secret     []byte
	expiration time.Duration
}

var _ Issuer = (*TokenService)(nil)
var _ Verifier = (*TokenService)(nil)

// NewTokenService creates a TokenService with the provided secret and token
// lifetime.
func NewTokenService(secret string, expiration time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// IssueToken creates a signed JWT with standard claims.
func (s *TokenService) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a signed token. The signature is checked
// before any claim is trusted; any tampering fails verification regardless of
// the expiry state.
func (s *TokenService) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; reject alg-substitution tokens.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("token missing subject")
	}
	return sub, nil
}
