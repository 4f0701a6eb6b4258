// AngelaMos | 2026
// dto.go

package payment

import (
	"time"
)

type CreateIntentRequest struct {
	AmountCents int64 `json:"amount_cents" validate:"required,gt=0"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type RecordPaymentRequest struct {
	AmountCents   int64  `json:"amount_cents"   validate:"required,gt=0"`
	Method        string `json:"method"         validate:"omitempty,max=50"`
	TransactionID string `json:"transaction_id" validate:"omitempty,max=255"`
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcel_id"`
	PayerEmail    string    `json:"payer_email"`
	AmountCents   int64     `json:"amount_cents"`
	Method        string    `json:"method"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type RecordPaymentResponse struct {
	Message   string          `json:"message"`
	PaymentID string          `json:"payment_id"`
	Payment   PaymentResponse `json:"payment"`
}

func ToPaymentResponse(p *Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ParcelID:      p.ParcelID,
		PayerEmail:    p.PayerEmail,
		AmountCents:   p.AmountCents,
		Method:        p.Method,
		Status:        p.Status,
		TransactionID: p.TransactionID,
		CreatedAt:     p.CreatedAt,
	}
}

func ToPaymentResponseList(payments []Payment) []PaymentResponse {
	responses := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, ToPaymentResponse(&p))
	}
	return responses
}
