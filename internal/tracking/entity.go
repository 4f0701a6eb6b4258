// AngelaMos | 2026
// entity.go

package tracking

import (
	"time"
)

// Update is one tracking event; the parcel's current_status column is a
// denormalized copy of the latest one.
type Update struct {
	ID        string    `db:"id"`
	ParcelID  string    `db:"parcel_id"`
	Status    string    `db:"status"`
	Location  string    `db:"location"`
	CreatedAt time.Time `db:"created_at"`
}
