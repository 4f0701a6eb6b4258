// AngelaMos | 2026
// service.go

package rider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/angelamos/parceld/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Apply submits a courier application. Status is server-forced to pending
// regardless of what the caller supplies.
func (s *Service) Apply(ctx context.Context, req ApplyRequest) (*Rider, error) {
	rider := &Rider{
		ID:     uuid.New().String(),
		Name:   req.Name,
		Email:  strings.ToLower(req.Email),
		Phone:  req.Phone,
		Region: req.Region,
		Status: StatusPending,
	}

	if err := s.repo.Create(ctx, rider); err != nil {
		return nil, err
	}

	return rider, nil
}

func (s *Service) ListPending(ctx context.Context) ([]Rider, error) {
	return s.repo.ListByStatus(ctx, StatusPending)
}

func (s *Service) ListActive(ctx context.Context) ([]Rider, error) {
	return s.repo.ListByStatus(ctx, StatusActive)
}

// UpdateStatus applies an approval decision. Approval also promotes the
// applicant's user record to the rider role; both writes commit or roll
// back together. The applicant email comes from the stored application,
// never from the request.
func (s *Service) UpdateStatus(
	ctx context.Context,
	id, status string,
) (*Rider, error) {
	if !ValidDecision(status) {
		return nil, fmt.Errorf(
			"update rider status: invalid status %q: %w",
			status,
			core.ErrInvalidInput,
		)
	}

	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf(
			"update rider status: malformed id: %w",
			core.ErrNotFound,
		)
	}

	rider, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if status == StatusActive {
		if err := s.repo.ApproveAndPromote(ctx, id, rider.Email); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.UpdateStatus(ctx, id, StatusRejected); err != nil {
			return nil, err
		}
	}

	return s.repo.GetByID(ctx, id)
}
