// AngelaMos | 2026
// handler_test.go

package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passthrough(next http.Handler) http.Handler {
	return next
}

func newTestRouter(repo Repository) chi.Router {
	r := chi.NewRouter()
	NewHandler(NewService(repo)).RegisterRoutes(r, passthrough, passthrough)
	return r
}

func TestUpsertLoginEndpoint(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	body := `{"email": "sender@example.com", "name": "Sender"}`

	req := httptest.NewRequest(
		http.MethodPost,
		"/users",
		strings.NewReader(body),
	)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created UpsertUserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "user created", created.Message)
	assert.False(t, created.Updated)

	req = httptest.NewRequest(
		http.MethodPost,
		"/users",
		strings.NewReader(body),
	)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var repeat UpsertUserResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&repeat))
	assert.Equal(t, "user already exists", repeat.Message)
	assert.True(t, repeat.Updated)
	assert.Equal(t, created.User.ID, repeat.User.ID)
}

func TestUpsertLoginEndpointValidation(t *testing.T) {
	router := newTestRouter(newFakeRepo())

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"email":`},
		{name: "missing email", body: `{"name": "Sender"}`},
		{name: "bad email", body: `{"email": "not-an-email"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(
				http.MethodPost,
				"/users",
				strings.NewReader(tt.body),
			)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSearchEndpoint(t *testing.T) {
	repo := newFakeRepo()
	router := newTestRouter(repo)

	seed := `{"email": "alice@example.com", "name": "Alice"}`
	req := httptest.NewRequest(
		http.MethodPost,
		"/users",
		strings.NewReader(seed),
	)
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/users/search?email=alice", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []UserSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "alice@example.com", summaries[0].Email)

	req = httptest.NewRequest(http.MethodGet, "/users/search", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
