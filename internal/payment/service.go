// AngelaMos | 2026
// service.go

package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/angelamos/parceld/internal/core"
	"github.com/angelamos/parceld/internal/user"
)

var tracer = otel.Tracer("parceld/payment")

// RoleResolver is satisfied by the user service; it backs the elevated
// access check on payment history.
type RoleResolver interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type Service struct {
	repo    Repository
	gateway Gateway
	roles   RoleResolver
}

func NewService(
	repo Repository,
	gateway Gateway,
	roles RoleResolver,
) *Service {
	return &Service{
		repo:    repo,
		gateway: gateway,
		roles:   roles,
	}
}

func (s *Service) CreateIntent(
	ctx context.Context,
	amountCents int64,
) (string, error) {
	if amountCents <= 0 {
		return "", fmt.Errorf(
			"create intent: amount must be positive: %w",
			core.ErrInvalidInput,
		)
	}

	ctx, span := tracer.Start(ctx, "payment.create_intent")
	defer span.End()

	secret, err := s.gateway.CreateIntent(ctx, amountCents)
	if err != nil {
		core.SetSpanError(ctx, err)
		return "", fmt.Errorf("create intent: %w", err)
	}

	return secret, nil
}

// Record applies "mark parcel paid + append payment history" as one
// logical operation. The payer identity comes from the verified token.
func (s *Service) Record(
	ctx context.Context,
	parcelID, payerEmail string,
	req RecordPaymentRequest,
) (*Payment, error) {
	if _, err := uuid.Parse(parcelID); err != nil {
		return nil, fmt.Errorf(
			"record payment: malformed parcel id: %w",
			core.ErrNotFound,
		)
	}

	method := req.Method
	if method == "" {
		method = "card"
	}

	payment := &Payment{
		ID:            uuid.New().String(),
		ParcelID:      parcelID,
		PayerEmail:    strings.ToLower(payerEmail),
		AmountCents:   req.AmountCents,
		Method:        method,
		Status:        StatusPaid,
		TransactionID: req.TransactionID,
	}

	ctx, span := tracer.Start(ctx, "payment.record")
	defer span.End()

	if err := s.repo.Record(ctx, payment); err != nil {
		core.SetSpanError(ctx, err)
		return nil, err
	}

	core.AddSpanEvent(ctx, "payment.recorded",
		attribute.String("parcel_id", parcelID),
		attribute.Int64("amount_cents", payment.AmountCents),
	)

	return payment, nil
}

// HistoryFor returns the target's payment records, newest first. A caller
// may only read their own history unless they hold the admin role.
func (s *Service) HistoryFor(
	ctx context.Context,
	callerEmail, targetEmail string,
) ([]Payment, error) {
	caller := strings.ToLower(callerEmail)
	target := strings.ToLower(targetEmail)

	if caller != target {
		role, err := s.roles.RoleByEmail(ctx, caller)
		if err != nil || role != user.RoleAdmin {
			return nil, fmt.Errorf(
				"payment history: %w",
				core.ErrForbidden,
			)
		}
	}

	return s.repo.ListByPayer(ctx, target)
}
