// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID          string    `db:"id"`
	Email       string    `db:"email"`
	Name        string    `db:"name"`
	Role        string    `db:"role"`
	CreatedAt   time.Time `db:"created_at"`
	LastLoginAt time.Time `db:"last_login_at"`
}

const (
	RoleUser  = "user"
	RoleRider = "rider"
	RoleAdmin = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleRider, RoleAdmin:
		return true
	}
	return false
}
