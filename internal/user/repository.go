// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/angelamos/parceld/internal/core"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
	UpdateRole(ctx context.Context, id, role string) error
	Search(ctx context.Context, query string, limit int) ([]UserSummary, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (id, email, name, role, last_login_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := r.db.GetContext(ctx, &user.CreatedAt, query,
		user.ID,
		user.Email,
		user.Name,
		user.Role,
		user.LastLoginAt,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `
		SELECT id, email, name, role, created_at, last_login_at
		FROM users
		WHERE id = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `
		SELECT id, email, name, role, created_at, last_login_at
		FROM users
		WHERE email = $1`

	var user User
	err := r.db.GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

func (r *repository) UpdateLastLogin(
	ctx context.Context,
	email string,
	at time.Time,
) error {
	query := `
		UPDATE users
		SET last_login_at = $2
		WHERE email = $1`

	result, err := r.db.ExecContext(ctx, query, email, at)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update last login: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) UpdateRole(ctx context.Context, id, role string) error {
	query := `
		UPDATE users
		SET role = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, role)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("update role: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) Search(
	ctx context.Context,
	query string,
	limit int,
) ([]UserSummary, error) {
	stmt := `
		SELECT email, role, created_at
		FROM users
		WHERE email ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2`

	pattern := "%" + escapeLike(query) + "%"

	var summaries []UserSummary
	err := r.db.SelectContext(ctx, &summaries, stmt, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	return summaries, nil
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
