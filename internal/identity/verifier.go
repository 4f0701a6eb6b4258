// AngelaMos | 2026
// verifier.go

package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/angelamos/parceld/internal/config"
	"github.com/angelamos/parceld/internal/core"
)

// Identity is the verified caller identity extracted from a bearer token.
// Email is the ownership key used everywhere else in the service.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Verifier validates bearer credentials issued by the external identity
// provider. Tokens are checked against the provider's published JWKS;
// key rotation is handled by the underlying cache.
type Verifier struct {
	cache   *jwk.Cache
	jwksURL string
	config  config.IdentityConfig
}

func NewVerifier(
	ctx context.Context,
	cfg config.IdentityConfig,
) (*Verifier, error) {
	cache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return nil, fmt.Errorf("create jwks cache: %w", err)
	}

	if err := cache.Register(ctx, cfg.JWKSURL); err != nil {
		return nil, fmt.Errorf("register jwks endpoint: %w", err)
	}

	return &Verifier{
		cache:   cache,
		jwksURL: cfg.JWKSURL,
		config:  cfg,
	}, nil
}

func (v *Verifier) Verify(
	ctx context.Context,
	tokenString string,
) (*Identity, error) {
	keys, err := v.cache.Lookup(ctx, v.jwksURL)
	if err != nil {
		return nil, fmt.Errorf("lookup jwks: %w", err)
	}

	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKeySet(keys),
		jwt.WithValidate(true),
		jwt.WithIssuer(v.config.Issuer),
		jwt.WithAudience(v.config.Audience),
	)
	if err != nil {
		if isTokenExpiredError(err) {
			return nil, fmt.Errorf("verify token: %w", core.ErrTokenExpired)
		}
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var email string
	if err := token.Get("email", &email); err != nil || email == "" {
		return nil, fmt.Errorf(
			"verify token: missing email claim: %w",
			core.ErrTokenInvalid,
		)
	}

	var name string
	//nolint:errcheck // name claim is optional
	_ = token.Get("name", &name)

	return &Identity{
		Subject: subject,
		Email:   strings.ToLower(email),
		Name:    name,
	}, nil
}

func isTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "exp") &&
		strings.Contains(errStr, "not satisfied")
}
