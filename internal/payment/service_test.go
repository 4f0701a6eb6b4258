// AngelaMos | 2026
// service_test.go

package payment

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/user"
)

type fakeRepo struct {
	paid     map[string]bool
	payments []Payment
	seq      time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		paid: make(map[string]bool),
		seq:  time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (f *fakeRepo) Record(_ context.Context, p *Payment) error {
	if f.paid[p.ParcelID] {
		return fmt.Errorf("record payment: %w", core.ErrAlreadyPaid)
	}
	f.paid[p.ParcelID] = true
	f.seq = f.seq.Add(time.Minute)
	p.CreatedAt = f.seq
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakeRepo) ListByPayer(
	_ context.Context,
	payerEmail string,
) ([]Payment, error) {
	var out []Payment
	for _, p := range f.payments {
		if p.PayerEmail == payerEmail {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type fakeGateway struct {
	calls   int
	lastAmt int64
}

func (f *fakeGateway) CreateIntent(
	_ context.Context,
	amountCents int64,
) (string, error) {
	f.calls++
	f.lastAmt = amountCents
	return fmt.Sprintf("pi_test_secret_%d", amountCents), nil
}

type fakeRoles map[string]string

func (f fakeRoles) RoleByEmail(_ context.Context, email string) (string, error) {
	role, ok := f[email]
	if !ok {
		return "", fmt.Errorf("role by email: %w", core.ErrNotFound)
	}
	return role, nil
}

const parcelID = "0c8d3f7a-9b1e-4d6c-8a2f-5e4b3c2d1a09"

func TestCreateIntent(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(newFakeRepo(), gw, fakeRoles{})
	ctx := context.Background()

	secret, err := svc.CreateIntent(ctx, 25000)
	require.NoError(t, err)
	assert.Equal(t, "pi_test_secret_25000", secret)
	assert.Equal(t, int64(25000), gw.lastAmt)

	for _, amount := range []int64{0, -500} {
		_, err := svc.CreateIntent(ctx, amount)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
	}
	assert.Equal(t, 1, gw.calls, "invalid amounts must not reach the gateway")
}

func TestRecordDefaultsAndIdentity(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeGateway{}, fakeRoles{})

	p, err := svc.Record(context.Background(), parcelID, "Payer@Example.com",
		RecordPaymentRequest{AmountCents: 12000})
	require.NoError(t, err)

	assert.Equal(t, "payer@example.com", p.PayerEmail)
	assert.Equal(t, "card", p.Method)
	assert.Equal(t, StatusPaid, p.Status)
}

func TestRecordRejectsDuplicate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeGateway{}, fakeRoles{})
	ctx := context.Background()

	_, err := svc.Record(ctx, parcelID, "payer@example.com",
		RecordPaymentRequest{AmountCents: 12000})
	require.NoError(t, err)

	_, err = svc.Record(ctx, parcelID, "payer@example.com",
		RecordPaymentRequest{AmountCents: 12000})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrAlreadyPaid)
	assert.Len(t, repo.payments, 1, "a parcel is paid at most once")
}

func TestRecordMalformedParcelID(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeGateway{}, fakeRoles{})

	_, err := svc.Record(context.Background(), "not-a-uuid", "payer@example.com",
		RecordPaymentRequest{AmountCents: 12000})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func TestHistoryForAccessControl(t *testing.T) {
	repo := newFakeRepo()
	roles := fakeRoles{
		"admin@example.com": user.RoleAdmin,
		"alice@example.com": user.RoleUser,
	}
	svc := NewService(repo, &fakeGateway{}, roles)
	ctx := context.Background()

	ids := []string{
		"11111111-1111-4111-8111-111111111111",
		"22222222-2222-4222-8222-222222222222",
	}
	for _, id := range ids {
		_, err := svc.Record(ctx, id, "alice@example.com",
			RecordPaymentRequest{AmountCents: 9000})
		require.NoError(t, err)
	}

	// Self access, newest first.
	got, err := svc.HistoryFor(ctx, "Alice@Example.com", "alice@example.com")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[1], got[0].ParcelID)
	assert.Equal(t, ids[0], got[1].ParcelID)

	// Another user's history is off limits without the admin role.
	_, err = svc.HistoryFor(ctx, "bob@example.com", "alice@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrForbidden)

	_, err = svc.HistoryFor(ctx, "alice@example.com", "bob@example.com")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrForbidden)

	// Admins may read anyone's history.
	got, err = svc.HistoryFor(ctx, "admin@example.com", "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
