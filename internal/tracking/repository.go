// AngelaMos | 2026
// repository.go

package tracking

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/angelamos/parceld/internal/core"
)

type Repository interface {
	AddUpdate(ctx context.Context, update *Update) error
	ListByParcel(ctx context.Context, parcelID string) ([]Update, error)
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// AddUpdate inserts the tracking event and refreshes the parcel's
// denormalized current status in one transaction.
func (r *repository) AddUpdate(ctx context.Context, update *Update) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		parcelQuery := `
			UPDATE parcels
			SET current_status = $2
			WHERE id = $1`

		result, err := tx.ExecContext(
			ctx,
			parcelQuery,
			update.ParcelID,
			update.Status,
		)
		if err != nil {
			return fmt.Errorf("update parcel status: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("update parcel status: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("update parcel status: %w", core.ErrNotFound)
		}

		insertQuery := `
			INSERT INTO tracking_updates (id, parcel_id, status, location)
			VALUES ($1, $2, $3, $4)
			RETURNING created_at`

		err = tx.GetContext(ctx, &update.CreatedAt, insertQuery,
			update.ID,
			update.ParcelID,
			update.Status,
			update.Location,
		)
		if err != nil {
			return fmt.Errorf("insert tracking update: %w", err)
		}

		return nil
	})
}

func (r *repository) ListByParcel(
	ctx context.Context,
	parcelID string,
) ([]Update, error) {
	query := `
		SELECT id, parcel_id, status, location, created_at
		FROM tracking_updates
		WHERE parcel_id = $1
		ORDER BY created_at DESC`

	var updates []Update
	err := r.db.SelectContext(ctx, &updates, query, parcelID)
	if err != nil {
		return nil, fmt.Errorf("list tracking updates: %w", err)
	}

	return updates, nil
}
