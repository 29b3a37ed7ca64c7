package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
)

type contextKey string

const identityContextKey contextKey = "identity"

// RequireIdentity resolves the bearer token through the identity gateway
// and stores the resulting identity in the request context. Requests
// without a resolvable token get 401 and never reach the handler.
// Handlers read the identity back with IdentityFrom and pass it
// explicitly into every service call; nothing downstream reaches into
// the context again.
func RequireIdentity(provider providers.IdentityProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := provider.Resolve(r.Context(), BearerToken(r))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFrom returns the identity resolved for this request, or nil on
// routes that never passed through RequireIdentity.
func IdentityFrom(ctx context.Context) *entities.Identity {
	identity, _ := ctx.Value(identityContextKey).(*entities.Identity)
	return identity
}

// BearerToken extracts the token from the Authorization header
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
