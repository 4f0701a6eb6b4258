// AngelaMos | 2026
// dto.go

package rider

import (
	"time"
)

type ApplyRequest struct {
	Name   string `json:"name"   validate:"required,min=1,max=100"`
	Email  string `json:"email"  validate:"required,email,max=255"`
	Phone  string `json:"phone"  validate:"max=50"`
	Region string `json:"region" validate:"max=100"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active rejected"`
}

type RiderResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Region    string    `json:"region"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToRiderResponse(rd *Rider) RiderResponse {
	return RiderResponse{
		ID:        rd.ID,
		Name:      rd.Name,
		Email:     rd.Email,
		Phone:     rd.Phone,
		Region:    rd.Region,
		Status:    rd.Status,
		CreatedAt: rd.CreatedAt,
		UpdatedAt: rd.UpdatedAt,
	}
}

func ToRiderResponseList(riders []Rider) []RiderResponse {
	responses := make([]RiderResponse, 0, len(riders))
	for _, rd := range riders {
		responses = append(responses, ToRiderResponse(&rd))
	}
	return responses
}
