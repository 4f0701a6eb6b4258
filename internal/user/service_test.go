// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/parceld/internal/core"
)

type fakeRepo struct {
	byEmail     map[string]*User
	roleWrites  int
	loginWrites int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: make(map[string]*User)}
}

func (f *fakeRepo) Create(_ context.Context, u *User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
	}
	u.CreatedAt = time.Now()
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (f *fakeRepo) UpdateLastLogin(
	_ context.Context,
	email string,
	at time.Time,
) error {
	u, ok := f.byEmail[email]
	if !ok {
		return fmt.Errorf("update last login: %w", core.ErrNotFound)
	}
	f.loginWrites++
	u.LastLoginAt = at
	return nil
}

func (f *fakeRepo) UpdateRole(_ context.Context, id, role string) error {
	f.roleWrites++
	for _, u := range f.byEmail {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return fmt.Errorf("update role: %w", core.ErrNotFound)
}

func (f *fakeRepo) Search(
	_ context.Context,
	query string,
	limit int,
) ([]UserSummary, error) {
	var out []UserSummary
	for _, u := range f.byEmail {
		if strings.Contains(u.Email, strings.ToLower(query)) {
			out = append(out, UserSummary{
				Email:     u.Email,
				Role:      u.Role,
				CreatedAt: u.CreatedAt,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestUpsertLoginCreatesThenRefreshes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	second := time.Date(2026, 2, 20, 18, 30, 0, 0, time.UTC)

	u, created, err := svc.UpsertLogin(ctx, UpsertUserRequest{
		Email:     "Sender@Example.com",
		Name:      "Sender",
		LastLogin: &first,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "sender@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)

	u2, created2, err := svc.UpsertLogin(ctx, UpsertUserRequest{
		Email:     "sender@example.com",
		LastLogin: &second,
	})
	require.NoError(t, err)
	assert.False(t, created2, "repeat login must report already exists")
	assert.Equal(t, u.ID, u2.ID)

	stored := repo.byEmail["sender@example.com"]
	assert.Equal(t, second, stored.LastLoginAt)
	assert.Len(t, repo.byEmail, 1, "repeat login must not create a second record")
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Search(context.Background(), "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestUpdateRoleValidation(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		wantErr bool
	}{
		{name: "user", role: RoleUser},
		{name: "rider", role: RoleRider},
		{name: "admin", role: RoleAdmin},
		{name: "unrecognized", role: "superuser", wantErr: true},
		{name: "empty", role: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			repo.byEmail["a@b.com"] = &User{
				ID:    "id-1",
				Email: "a@b.com",
				Role:  RoleUser,
			}
			svc := NewService(repo)

			u, err := svc.UpdateRole(context.Background(), "id-1", tt.role)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, core.ErrInvalidInput)
				assert.Zero(t, repo.roleWrites, "invalid role must not write")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.role, u.Role)
		})
	}
}

func TestUpdateRoleAbsentUser(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.UpdateRole(context.Background(), "missing", RoleAdmin)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestRoleByEmail(t *testing.T) {
	repo := newFakeRepo()
	repo.byEmail["ops@example.com"] = &User{
		ID:    "id-9",
		Email: "ops@example.com",
		Role:  RoleAdmin,
	}
	svc := NewService(repo)

	role, err := svc.RoleByEmail(context.Background(), "Ops@Example.COM")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}
