// AngelaMos | 2026
// repository.go

package rider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/user"
)

type Repository interface {
	Create(ctx context.Context, rider *Rider) error
	GetByID(ctx context.Context, id string) (*Rider, error)
	ListByStatus(ctx context.Context, status string) ([]Rider, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ApproveAndPromote(ctx context.Context, id, applicantEmail string) error
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rider *Rider) error {
	query := `
		INSERT INTO riders (id, name, email, phone, region, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, rider, query,
		rider.ID,
		rider.Name,
		rider.Email,
		rider.Phone,
		rider.Region,
		rider.Status,
	)
	if err != nil {
		return fmt.Errorf("create rider: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Rider, error) {
	query := `
		SELECT id, name, email, phone, region, status, created_at, updated_at
		FROM riders
		WHERE id = $1`

	var rider Rider
	err := r.db.GetContext(ctx, &rider, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get rider: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}

	return &rider, nil
}

func (r *repository) ListByStatus(
	ctx context.Context,
	status string,
) ([]Rider, error) {
	query := `
		SELECT id, name, email, phone, region, status, created_at, updated_at
		FROM riders
		WHERE status = $1
		ORDER BY created_at DESC`

	var riders []Rider
	err := r.db.SelectContext(ctx, &riders, query, status)
	if err != nil {
		return nil, fmt.Errorf("list riders: %w", err)
	}

	return riders, nil
}

func (r *repository) UpdateStatus(
	ctx context.Context,
	id, status string,
) error {
	query := `
		UPDATE riders
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update rider status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rider status: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update rider status: %w", core.ErrNotFound)
	}

	return nil
}

// ApproveAndPromote activates the application and promotes the applicant's
// user record to the rider role in one transaction. A failure on either
// write rolls back both.
func (r *repository) ApproveAndPromote(
	ctx context.Context,
	id, applicantEmail string,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		riderQuery := `
			UPDATE riders
			SET status = $2, updated_at = NOW()
			WHERE id = $1`

		result, err := tx.ExecContext(ctx, riderQuery, id, StatusActive)
		if err != nil {
			return fmt.Errorf("approve rider: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("approve rider: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("approve rider: %w", core.ErrNotFound)
		}

		userQuery := `
			UPDATE users
			SET role = $2
			WHERE email = $1`

		result, err = tx.ExecContext(
			ctx,
			userQuery,
			applicantEmail,
			user.RoleRider,
		)
		if err != nil {
			return fmt.Errorf("promote applicant: %w", err)
		}

		rows, err = result.RowsAffected()
		if err != nil {
			return fmt.Errorf("promote applicant: %w", err)
		}

		if rows == 0 {
			return fmt.Errorf("promote applicant: %w", core.ErrNotFound)
		}

		return nil
	})
}
