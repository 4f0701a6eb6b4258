// AngelaMos | 2026
// entity.go

package payment

import (
	"time"
)

// Payment is an append-only audit row: never updated or deleted once
// written.
type Payment struct {
	ID            string    `db:"id"`
	ParcelID      string    `db:"parcel_id"`
	PayerEmail    string    `db:"payer_email"`
	AmountCents   int64     `db:"amount_cents"`
	Method        string    `db:"method"`
	Status        string    `db:"status"`
	TransactionID string    `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}

const StatusPaid = "paid"
