package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type identityKey struct{}

// Identity is the authenticated caller. UserID is empty for
// tenant-level service keys.
type Identity struct {
	TenantID string
	UserID   string
}

// IdentityResolver resolves a caller identity from a bearer token.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, token string) (Identity, error)
}

// IdentityFromContext returns the caller identity from context, if present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// AuthMiddleware enforces bearer token authentication.
func AuthMiddleware(resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			id, err := resolver.ResolveIdentity(r.Context(), token)
			if err != nil || id.TenantID == "" {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
