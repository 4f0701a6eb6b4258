// AngelaMos | 2026
// auth.go

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/identity"
)

const (
	IdentityKey contextKey = "identity"
)

// TokenVerifier validates a bearer credential and yields the caller identity.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*identity.Identity, error)
}

// RoleResolver looks up the stored role for a verified email. Roles live in
// the user store, not in the token, so promotions take effect immediately.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

// Authenticator enforces the two-tier credential policy: an absent
// Authorization header is unauthenticated (401), a present but invalid
// token is forbidden (403).
func Authenticator(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)

			if token == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("unauthorized access"),
				)
				return
			}

			ident, err := verifier.Verify(r.Context(), token)
			if err != nil {
				core.JSONError(w, core.ForbiddenError("forbidden access"))
				return
			}

			ctx := context.WithValue(r.Context(), IdentityKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates a route on the caller holding the admin role.
// Must run after Authenticator.
func RequireAdmin(resolver RoleResolver) func(http.Handler) http.Handler {
	return RequireRole(resolver, "admin")
}

func RequireRole(
	resolver RoleResolver,
	roles ...string,
) func(http.Handler) http.Handler {
	roleSet := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())

			if email == "" {
				core.JSONError(
					w,
					core.UnauthorizedError("unauthorized access"),
				)
				return
			}

			role, err := resolver.RoleByEmail(r.Context(), email)
			if err != nil {
				core.JSONError(w, core.ForbiddenError("forbidden access"))
				return
			}

			if _, ok := roleSet[role]; !ok {
				core.JSONError(w, core.ForbiddenError("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func GetIdentity(ctx context.Context) *identity.Identity {
	if ident, ok := ctx.Value(IdentityKey).(*identity.Identity); ok {
		return ident
	}
	return nil
}

func GetEmail(ctx context.Context) string {
	if ident := GetIdentity(ctx); ident != nil {
		return ident.Email
	}
	return ""
}
