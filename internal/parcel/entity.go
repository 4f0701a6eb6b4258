// AngelaMos | 2026
// entity.go

package parcel

import (
	"time"
)

type Parcel struct {
	ID              string    `db:"id"`
	SenderEmail     string    `db:"sender_email"`
	SenderName      string    `db:"sender_name"`
	ReceiverName    string    `db:"receiver_name"`
	ReceiverContact string    `db:"receiver_contact"`
	Destination     string    `db:"destination"`
	ParcelType      string    `db:"parcel_type"`
	WeightKg        float64   `db:"weight_kg"`
	CostCents       int64     `db:"cost_cents"`
	PaymentStatus   string    `db:"payment_status"`
	CurrentStatus   string    `db:"current_status"`
	TrackingCode    string    `db:"tracking_code"`
	CreatedAt       time.Time `db:"created_at"`
}

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

const (
	StatusCreated   = "created"
	StatusInTransit = "in_transit"
	StatusDelivered = "delivered"
)
