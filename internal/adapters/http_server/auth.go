package httpserver

import (
	"context"
	"net/http"
	"strings"

	"staybook/internal/adapters/token"
)

type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

type ctxKey string

const ctxClaims ctxKey = "claims"

// RequireToken gates mutating routes. It accepts "Bearer <jwt>" or the bare
// token in Authorization and never calls next on failure.
func RequireToken(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
			if raw == "" {
				writeMessage(w, http.StatusUnauthorized, "You cannot access this operation without a token!")
				return
			}
			claims, err := v.Verify(raw)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Invalid token provided!")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxClaims, claims)))
		})
	}
}

// ClaimsFrom returns the verified claims of an authenticated request.
func ClaimsFrom(ctx context.Context) *token.Claims {
	c, _ := ctx.Value(ctxClaims).(*token.Claims)
	return c
}
