package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/crucial707/codepad/internal/auth"
	"github.com/crucial707/codepad/internal/common"
	"github.com/crucial707/codepad/internal/metrics"
)

type key string

const ClaimsKey key = "claims"

// TokenVerifier checks a raw token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// JWTMiddleware rejects requests without a valid token. The Authorization header
// carries the token as-is, with no "Bearer " prefix. A missing token is 401; a
// malformed, expired or badly signed one is 403.
func JWTMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := verifier.Verify(r.Header.Get("Authorization"))
			if err != nil {
				status, msg, result := http.StatusForbidden, "invalid token", "invalid"
				if errors.Is(err, common.ErrAuthMissing) {
					status, msg, result = http.StatusUnauthorized, "access denied", "missing"
				}
				metrics.IncAuthEvent("verify", result)
				writeJSONError(w, msg, status)
				return
			}
			metrics.IncAuthEvent("verify", "ok")

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims returns the verified claims stored by JWTMiddleware.
func GetClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// GetUserID returns the caller's owner id.
func GetUserID(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok {
		return "", false
	}
	return claims.OwnerID, true
}

// WithClaims returns ctx carrying claims, as JWTMiddleware would.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsKey, claims)
}

func writeJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
