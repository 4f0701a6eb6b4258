// AngelaMos | 2026
// service.go

package parcel

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

func (s *Service) Create(
	ctx context.Context,
	req CreateParcelRequest,
) (*Parcel, error) {
	parcel := &Parcel{
		ID:              uuid.New().String(),
		SenderEmail:     strings.ToLower(req.SenderEmail),
		SenderName:      req.SenderName,
		ReceiverName:    req.ReceiverName,
		ReceiverContact: req.ReceiverContact,
		Destination:     req.Destination,
		ParcelType:      req.ParcelType,
		WeightKg:        req.WeightKg,
		CostCents:       req.CostCents,
		PaymentStatus:   PaymentStatusUnpaid,
		CurrentStatus:   StatusCreated,
		TrackingCode:    newTrackingCode(),
	}

	if parcel.ParcelType == "" {
		parcel.ParcelType = "package"
	}

	if err := s.repo.Create(ctx, parcel); err != nil {
		return nil, err
	}

	return parcel, nil
}

// ListForSender returns only the caller's own parcels. The sender email
// comes from the verified identity, never from request input.
func (s *Service) ListForSender(
	ctx context.Context,
	senderEmail string,
) ([]Parcel, error) {
	return s.repo.ListBySender(ctx, strings.ToLower(senderEmail))
}

func (s *Service) Get(ctx context.Context, id string) (*Parcel, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("get parcel: malformed id: %w", core.ErrNotFound)
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) (int64, error) {
	if _, err := uuid.Parse(id); err != nil {
		return 0, fmt.Errorf(
			"delete parcel: malformed id: %w",
			core.ErrNotFound,
		)
	}

	return s.repo.Delete(ctx, id)
}

func newTrackingCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "PCL-" + raw[:12]
}
