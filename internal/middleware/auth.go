package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/myflix/myflix-api/internal/auth"
)

type contextKey string

// IdentityKey is the request-context key holding the verified *auth.Identity.
const IdentityKey contextKey = "identity"

// RequireAuth validates the Authorization bearer header and injects the
// verified identity into the request context.
func RequireAuth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := bearerToken(r)
			var identity *auth.Identity
			if err == nil {
				identity, err = tokens.Verify(raw)
			}
			if err != nil {
				writeAuthError(w, err)
				return
			}
			ctx := context.WithValue(r.Context(), IdentityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the verified identity from the request context, or nil
// when the route was reached without the auth middleware (public mode).
func Identity(ctx context.Context) *auth.Identity {
	id, _ := ctx.Value(IdentityKey).(*auth.Identity)
	return id
}

// bearerToken extracts the token from the Authorization header. An absent
// header is a missing token; a present header that is not a bearer value is
// malformed, not missing.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", nil
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", auth.ErrMalformedToken
	}
	return parts[1], nil
}

func writeAuthError(w http.ResponseWriter, err error) {
	msg := "not authenticated"
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		msg = "missing bearer token"
	case errors.Is(err, auth.ErrExpiredToken):
		msg = "token expired"
	case errors.Is(err, auth.ErrMalformedToken):
		msg = "invalid bearer token"
	}
	http.Error(w, `{"error":"`+msg+`"}`, http.StatusUnauthorized)
}
