// AngelaMos | 2026
// repository.go

package parcel

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/parceld/internal/core"
)

type Repository interface {
	Create(ctx context.Context, parcel *Parcel) error
	GetByID(ctx context.Context, id string) (*Parcel, error)
	ListBySender(ctx context.Context, senderEmail string) ([]Parcel, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, parcel *Parcel) error {
	query := `
		INSERT INTO parcels (
			id, sender_email, sender_name, receiver_name, receiver_contact,
			destination, parcel_type, weight_kg, cost_cents,
			payment_status, current_status, tracking_code
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &parcel.CreatedAt, query,
		parcel.ID,
		parcel.SenderEmail,
		parcel.SenderName,
		parcel.ReceiverName,
		parcel.ReceiverContact,
		parcel.Destination,
		parcel.ParcelType,
		parcel.WeightKg,
		parcel.CostCents,
		parcel.PaymentStatus,
		parcel.CurrentStatus,
		parcel.TrackingCode,
	)
	if err != nil {
		return fmt.Errorf("create parcel: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Parcel, error) {
	query := `
		SELECT id, sender_email, sender_name, receiver_name, receiver_contact,
		       destination, parcel_type, weight_kg, cost_cents,
		       payment_status, current_status, tracking_code, created_at
		FROM parcels
		WHERE id = $1`

	var parcel Parcel
	err := r.db.GetContext(ctx, &parcel, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get parcel: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return &parcel, nil
}

func (r *repository) ListBySender(
	ctx context.Context,
	senderEmail string,
) ([]Parcel, error) {
	query := `
		SELECT id, sender_email, sender_name, receiver_name, receiver_contact,
		       destination, parcel_type, weight_kg, cost_cents,
		       payment_status, current_status, tracking_code, created_at
		FROM parcels
		WHERE sender_email = $1
		ORDER BY created_at DESC`

	var parcels []Parcel
	err := r.db.SelectContext(ctx, &parcels, query, senderEmail)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}

	return parcels, nil
}

func (r *repository) Delete(ctx context.Context, id string) (int64, error) {
	query := `DELETE FROM parcels WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("delete parcel: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete parcel: %w", err)
	}

	if rows == 0 {
		return 0, fmt.Errorf("delete parcel: %w", core.ErrNotFound)
	}

	return rows, nil
}
