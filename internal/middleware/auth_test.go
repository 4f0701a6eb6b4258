// AngelaMos | 2026
// auth_test.go

package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/identity"
)

type stubVerifier struct {
	identities map[string]*identity.Identity
}

func (s *stubVerifier) Verify(
	_ context.Context,
	token string,
) (*identity.Identity, error) {
	ident, ok := s.identities[token]
	if !ok {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenInvalid)
	}
	return ident, nil
}

type stubRoles map[string]string

func (s stubRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	role, ok := s[email]
	if !ok {
		return "", fmt.Errorf("role by email: %w", core.ErrNotFound)
	}
	return role, nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Message
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticatorMissingToken(t *testing.T) {
	verifier := &stubVerifier{identities: map[string]*identity.Identity{}}
	handler := Authenticator(verifier)(okHandler())

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header"},
		{name: "wrong scheme", header: "Basic abc123"},
		{name: "empty bearer", header: "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/parcels", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "unauthorized access", decodeMessage(t, rec))
		})
	}
}

func TestAuthenticatorInvalidToken(t *testing.T) {
	verifier := &stubVerifier{identities: map[string]*identity.Identity{}}
	handler := Authenticator(verifier)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/parcels", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden access", decodeMessage(t, rec))
}

func TestAuthenticatorValidToken(t *testing.T) {
	verifier := &stubVerifier{identities: map[string]*identity.Identity{
		"good-token": {
			Subject: "sub-1",
			Email:   "alice@example.com",
			Name:    "Alice",
		},
	}}

	var seen *identity.Identity
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetIdentity(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := Authenticator(verifier)(inner)

	req := httptest.NewRequest(http.MethodGet, "/parcels", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "alice@example.com", seen.Email)
}

func TestRequireAdmin(t *testing.T) {
	verifier := &stubVerifier{identities: map[string]*identity.Identity{
		"admin-token":   {Subject: "sub-1", Email: "admin@example.com"},
		"user-token":    {Subject: "sub-2", Email: "user@example.com"},
		"unknown-token": {Subject: "sub-3", Email: "ghost@example.com"},
	}}
	roles := stubRoles{
		"admin@example.com": "admin",
		"user@example.com":  "user",
	}

	handler := Authenticator(verifier)(RequireAdmin(roles)(okHandler()))

	tests := []struct {
		name     string
		token    string
		wantCode int
	}{
		{name: "admin allowed", token: "admin-token", wantCode: http.StatusOK},
		{name: "user forbidden", token: "user-token", wantCode: http.StatusForbidden},
		{name: "unresolvable role forbidden", token: "unknown-token", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(
				http.MethodPatch,
				"/users/abc/role",
				nil,
			)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestRequireAdminWithoutAuthenticator(t *testing.T) {
	handler := RequireAdmin(stubRoles{})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer", header: "Bearer abc", want: "abc"},
		{name: "case insensitive scheme", header: "bearer abc", want: "abc"},
		{name: "missing", header: "", want: ""},
		{name: "no scheme", header: "abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, ExtractToken(req))
		})
	}
}
