// AngelaMos | 2026
// dto.go

package parcel

import (
	"time"
)

type CreateParcelRequest struct {
	SenderEmail     string  `json:"sender_email"     validate:"required,email,max=255"`
	SenderName      string  `json:"sender_name"      validate:"max=100"`
	ReceiverName    string  `json:"receiver_name"    validate:"required,min=1,max=100"`
	ReceiverContact string  `json:"receiver_contact" validate:"max=100"`
	Destination     string  `json:"destination"      validate:"required,min=1,max=255"`
	ParcelType      string  `json:"parcel_type"      validate:"omitempty,max=50"`
	WeightKg        float64 `json:"weight_kg"        validate:"omitempty,gte=0"`
	CostCents       int64   `json:"cost_cents"       validate:"omitempty,gte=0"`
}

type ParcelResponse struct {
	ID              string    `json:"id"`
	SenderEmail     string    `json:"sender_email"`
	SenderName      string    `json:"sender_name"`
	ReceiverName    string    `json:"receiver_name"`
	ReceiverContact string    `json:"receiver_contact"`
	Destination     string    `json:"destination"`
	ParcelType      string    `json:"parcel_type"`
	WeightKg        float64   `json:"weight_kg"`
	CostCents       int64     `json:"cost_cents"`
	PaymentStatus   string    `json:"payment_status"`
	CurrentStatus   string    `json:"current_status"`
	TrackingCode    string    `json:"tracking_code"`
	CreatedAt       time.Time `json:"created_at"`
}

type DeleteParcelResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

func ToParcelResponse(p *Parcel) ParcelResponse {
	return ParcelResponse{
		ID:              p.ID,
		SenderEmail:     p.SenderEmail,
		SenderName:      p.SenderName,
		ReceiverName:    p.ReceiverName,
		ReceiverContact: p.ReceiverContact,
		Destination:     p.Destination,
		ParcelType:      p.ParcelType,
		WeightKg:        p.WeightKg,
		CostCents:       p.CostCents,
		PaymentStatus:   p.PaymentStatus,
		CurrentStatus:   p.CurrentStatus,
		TrackingCode:    p.TrackingCode,
		CreatedAt:       p.CreatedAt,
	}
}

func ToParcelResponseList(parcels []Parcel) []ParcelResponse {
	responses := make([]ParcelResponse, 0, len(parcels))
	for _, p := range parcels {
		responses = append(responses, ToParcelResponse(&p))
	}
	return responses
}
