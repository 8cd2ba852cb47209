// Package auth issues and verifies the bearer tokens that guard the project routes.
// Tokens are HS256 JWTs and carry no server-side state: signature and expiry decide
// validity.
package auth

import (
	"fmt"
	"time"

	"github.com/crucial707/codepad/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of an issued token.
const TokenTTL = time.Hour

// Claims is the verified payload of a token.
type Claims struct {
	OwnerID  string `json:"ownerId"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies tokens with a process-wide secret.
type Tokens struct {
	secret []byte
	now    func() time.Time
}

// NewTokens returns a Tokens using secret and the wall clock.
func NewTokens(secret []byte) *Tokens {
	return &Tokens{secret: secret, now: time.Now}
}

// WithClock returns a copy of t that reads time from now. Used by tests.
func (t *Tokens) WithClock(now func() time.Time) *Tokens {
	return &Tokens{secret: t.secret, now: now}
}

// Issue signs a token for the user, valid for TokenTTL from now.
func (t *Tokens) Issue(ownerID, username string) (string, error) {
	issued := t.now()
	claims := Claims{
		OwnerID:  ownerID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded claims.
// An empty token yields common.ErrAuthMissing; every other failure wraps
// common.ErrAuthInvalid.
func (t *Tokens) Verify(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, common.ErrAuthMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrAuthInvalid, err)
	}
	if !token.Valid {
		return nil, common.ErrAuthInvalid
	}
	return claims, nil
}
