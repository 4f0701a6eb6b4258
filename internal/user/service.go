// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/angelamos/parceld/internal/core"
)

const defaultSearchLimit = 10

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// UpsertLogin records a user's first authenticated contact, or refreshes
// the last-login timestamp on repeat contact. The returned flag reports
// whether a new record was created.
func (s *Service) UpsertLogin(
	ctx context.Context,
	req UpsertUserRequest,
) (*User, bool, error) {
	email := strings.ToLower(req.Email)

	lastLogin := time.Now()
	if req.LastLogin != nil {
		lastLogin = *req.LastLogin
	}

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		if err := s.repo.UpdateLastLogin(ctx, email, lastLogin); err != nil {
			return nil, false, err
		}
		existing.LastLoginAt = lastLogin
		return existing, false, nil
	}

	if !errors.Is(err, core.ErrNotFound) {
		return nil, false, err
	}

	created := &User{
		ID:          uuid.New().String(),
		Email:       email,
		Name:        req.Name,
		Role:        RoleUser,
		LastLoginAt: lastLogin,
	}

	if err := s.repo.Create(ctx, created); err != nil {
		// Lost a race with a concurrent first login; treat as repeat contact.
		if errors.Is(err, core.ErrDuplicateKey) {
			return s.UpsertLogin(ctx, req)
		}
		return nil, false, err
	}

	return created, true, nil
}

func (s *Service) Search(
	ctx context.Context,
	query string,
) ([]UserSummary, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf(
			"search users: empty query: %w",
			core.ErrInvalidInput,
		)
	}

	return s.repo.Search(ctx, query, defaultSearchLimit)
}

func (s *Service) UpdateRole(
	ctx context.Context,
	id, role string,
) (*User, error) {
	if !ValidRole(role) {
		return nil, fmt.Errorf(
			"update role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(email))
}

// RoleByEmail backs the access guard's elevated-role checks.
func (s *Service) RoleByEmail(
	ctx context.Context,
	email string,
) (string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", err
	}
	return u.Role, nil
}
