// AngelaMos | 2026
// entity.go

package rider

import (
	"time"
)

type Rider struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Region    string    `db:"region"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Application state machine: pending -> active | rejected.
// Neither terminal state transitions back to pending.
const (
	StatusPending  = "pending"
	StatusActive   = "active"
	StatusRejected = "rejected"
)

func ValidDecision(status string) bool {
	return status == StatusActive || status == StatusRejected
}
