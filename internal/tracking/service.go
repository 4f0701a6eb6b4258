// AngelaMos | 2026
// service.go

package tracking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/angelamos/parceld/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddUpdate(
	ctx context.Context,
	req AddUpdateRequest,
) (*Update, error) {
	update := &Update{
		ID:       uuid.New().String(),
		ParcelID: req.ParcelID,
		Status:   req.Status,
		Location: req.Location,
	}

	if update.Location == "" {
		update.Location = "N/A"
	}

	if err := s.repo.AddUpdate(ctx, update); err != nil {
		return nil, err
	}

	return update, nil
}

func (s *Service) History(
	ctx context.Context,
	parcelID string,
) ([]Update, error) {
	if _, err := uuid.Parse(parcelID); err != nil {
		return nil, fmt.Errorf(
			"tracking history: malformed parcel id: %w",
			core.ErrNotFound,
		)
	}

	return s.repo.ListByParcel(ctx, parcelID)
}
