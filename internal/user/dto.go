// AngelaMos | 2026
// dto.go

package user

import (
	"time"
)

type UpsertUserRequest struct {
	Email     string     `json:"email"      validate:"required,email,max=255"`
	Name      string     `json:"name"       validate:"max=100"`
	LastLogin *time.Time `json:"last_login" validate:"omitempty"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user rider admin"`
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// UpsertUserResponse distinguishes a fresh registration from a repeat
// login that only refreshed the last-login timestamp.
type UpsertUserResponse struct {
	Message string       `json:"message"`
	Updated bool         `json:"updated"`
	User    UserResponse `json:"user"`
}

// UserSummary is the search projection: no profile fields beyond what
// the rider-assignment UI needs.
type UserSummary struct {
	Email     string    `json:"email"      db:"email"`
	Role      string    `json:"role"       db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
