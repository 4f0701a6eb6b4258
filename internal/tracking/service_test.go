// AngelaMos | 2026
// service_test.go

package tracking

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/parceld/internal/core"
)

type fakeRepo struct {
	byParcel map[string][]Update
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byParcel: make(map[string][]Update)}
}

func (f *fakeRepo) AddUpdate(_ context.Context, u *Update) error {
	// Newest first, matching the query ordering.
	f.byParcel[u.ParcelID] = append([]Update{*u}, f.byParcel[u.ParcelID]...)
	return nil
}

func (f *fakeRepo) ListByParcel(
	_ context.Context,
	parcelID string,
) ([]Update, error) {
	updates, ok := f.byParcel[parcelID]
	if !ok {
		return nil, fmt.Errorf("list tracking updates: %w", core.ErrNotFound)
	}
	return updates, nil
}

const parcelID = "7d0f1e2a-3b4c-4d5e-8f60-718293a4b5c6"

func TestAddUpdateDefaultsLocation(t *testing.T) {
	svc := NewService(newFakeRepo())

	u, err := svc.AddUpdate(context.Background(), AddUpdateRequest{
		ParcelID: parcelID,
		Status:   "in_transit",
	})
	require.NoError(t, err)
	assert.Equal(t, "N/A", u.Location)
	assert.Equal(t, "in_transit", u.Status)
}

func TestHistoryOrderingAndNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.AddUpdate(ctx, AddUpdateRequest{
		ParcelID: parcelID,
		Status:   "in_transit",
		Location: "Dhaka hub",
	})
	require.NoError(t, err)

	_, err = svc.AddUpdate(ctx, AddUpdateRequest{
		ParcelID: parcelID,
		Status:   "delivered",
		Location: "Destination",
	})
	require.NoError(t, err)

	got, err := svc.History(ctx, parcelID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "delivered", got[0].Status)
	assert.Equal(t, "in_transit", got[1].Status)

	_, err = svc.History(ctx, "not-a-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}
