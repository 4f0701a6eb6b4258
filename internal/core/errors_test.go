// AngelaMos | 2026
// errors_test.go

package core

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid input", err: ErrInvalidInput, want: http.StatusBadRequest},
		{name: "unauthorized", err: ErrUnauthorized, want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "token invalid", err: ErrTokenInvalid, want: http.StatusForbidden},
		{name: "token expired", err: ErrTokenExpired, want: http.StatusForbidden},
		{name: "not found", err: ErrNotFound, want: http.StatusNotFound},
		{name: "already paid", err: ErrAlreadyPaid, want: http.StatusConflict},
		{name: "duplicate key", err: ErrDuplicateKey, want: http.StatusConflict},
		{
			name: "wrapped sentinel",
			err:  fmt.Errorf("get parcel: %w", ErrNotFound),
			want: http.StatusNotFound,
		},
		{
			name: "unknown",
			err:  errors.New("connection reset"),
			want: http.StatusInternalServerError,
		},
		{
			name: "app error wins",
			err:  ForbiddenError("forbidden access"),
			want: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFromError(tt.err))
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := UnauthorizedError("unauthorized access")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "unauthorized access", err.Message)
	assert.Contains(t, err.Error(), "unauthorized access")
}
