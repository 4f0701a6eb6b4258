// AngelaMos | 2026
// repository.go

package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/parcel"
)

type Repository interface {
	Record(ctx context.Context, payment *Payment) error
	ListByPayer(ctx context.Context, payerEmail string) ([]Payment, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Record marks the parcel paid and appends the audit row in one
// transaction. The conditional update doubles as the duplicate guard:
// a parcel that is already paid is rejected rather than re-recorded.
func (r *repository) Record(ctx context.Context, payment *Payment) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		parcelQuery := `
			UPDATE parcels
			SET payment_status = $2
			WHERE id = $1 AND payment_status = $3`

		result, err := tx.ExecContext(
			ctx,
			parcelQuery,
			payment.ParcelID,
			parcel.PaymentStatusPaid,
			parcel.PaymentStatusUnpaid,
		)
		if err != nil {
			return fmt.Errorf("mark parcel paid: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("mark parcel paid: %w", err)
		}

		if rows == 0 {
			var status string
			statusQuery := `SELECT payment_status FROM parcels WHERE id = $1`

			err := tx.GetContext(ctx, &status, statusQuery, payment.ParcelID)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("mark parcel paid: %w", core.ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("mark parcel paid: %w", err)
			}

			return fmt.Errorf("mark parcel paid: %w", core.ErrAlreadyPaid)
		}

		insertQuery := `
			INSERT INTO payments (
				id, parcel_id, payer_email, amount_cents,
				method, status, transaction_id
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7
			)
			RETURNING created_at`

		err = tx.GetContext(ctx, &payment.CreatedAt, insertQuery,
			payment.ID,
			payment.ParcelID,
			payment.PayerEmail,
			payment.AmountCents,
			payment.Method,
			payment.Status,
			payment.TransactionID,
		)
		if err != nil {
			return fmt.Errorf("record payment: %w", err)
		}

		return nil
	})
}

func (r *repository) ListByPayer(
	ctx context.Context,
	payerEmail string,
) ([]Payment, error) {
	query := `
		SELECT id, parcel_id, payer_email, amount_cents,
		       method, status, transaction_id, created_at
		FROM payments
		WHERE payer_email = $1
		ORDER BY created_at DESC`

	var payments []Payment
	err := r.db.SelectContext(ctx, &payments, query, payerEmail)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return payments, nil
}
