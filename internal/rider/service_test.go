// AngelaMos | 2026
// service_test.go

package rider

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/parceld/internal/core"
)

type fakeRepo struct {
	riders   map[string]*Rider
	promoted []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{riders: make(map[string]*Rider)}
}

func (f *fakeRepo) Create(_ context.Context, r *Rider) error {
	cp := *r
	f.riders[r.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Rider, error) {
	r, ok := f.riders[id]
	if !ok {
		return nil, fmt.Errorf("get rider: %w", core.ErrNotFound)
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRepo) ListByStatus(
	_ context.Context,
	status string,
) ([]Rider, error) {
	var out []Rider
	for _, r := range f.riders {
		if r.Status == status {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id, status string) error {
	r, ok := f.riders[id]
	if !ok {
		return fmt.Errorf("update rider status: %w", core.ErrNotFound)
	}
	r.Status = status
	return nil
}

func (f *fakeRepo) ApproveAndPromote(
	_ context.Context,
	id, applicantEmail string,
) error {
	r, ok := f.riders[id]
	if !ok {
		return fmt.Errorf("approve rider: %w", core.ErrNotFound)
	}
	r.Status = StatusActive
	f.promoted = append(f.promoted, applicantEmail)
	return nil
}

func TestApplyForcesPendingStatus(t *testing.T) {
	svc := NewService(newFakeRepo())

	r, err := svc.Apply(context.Background(), ApplyRequest{
		Name:   "Rahim",
		Email:  "Rahim@Example.com",
		Phone:  "+8801700000000",
		Region: "Dhaka",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPending, r.Status)
	assert.Equal(t, "rahim@example.com", r.Email)
}

func TestUpdateStatusApprovePromotes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	applicant, err := svc.Apply(ctx, ApplyRequest{
		Name:   "Rahim",
		Email:  "rahim@example.com",
		Phone:  "+8801700000000",
		Region: "Dhaka",
	})
	require.NoError(t, err)

	r, err := svc.UpdateStatus(ctx, applicant.ID, StatusActive)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, r.Status)
	assert.Equal(t, []string{"rahim@example.com"}, repo.promoted,
		"approval must promote the applicant's user record")
}

func TestUpdateStatusRejectDoesNotPromote(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	applicant, err := svc.Apply(ctx, ApplyRequest{
		Name:   "Karim",
		Email:  "karim@example.com",
		Phone:  "+8801800000000",
		Region: "Chittagong",
	})
	require.NoError(t, err)

	r, err := svc.UpdateStatus(ctx, applicant.ID, StatusRejected)
	require.NoError(t, err)

	assert.Equal(t, StatusRejected, r.Status)
	assert.Empty(t, repo.promoted, "rejection must not touch the user role")
}

func TestUpdateStatusValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	applicant, err := svc.Apply(ctx, ApplyRequest{
		Name:   "Karim",
		Email:  "karim@example.com",
		Phone:  "+8801800000000",
		Region: "Chittagong",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, applicant.ID, "pending")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Equal(t, StatusPending, repo.riders[applicant.ID].Status,
		"invalid decision must not write")

	_, err = svc.UpdateStatus(ctx, "not-a-uuid", StatusActive)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.UpdateStatus(ctx, "4f2b2cf0-5a32-41d8-9f2e-317a0b6f4f57", StatusActive)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
