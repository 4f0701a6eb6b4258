// AngelaMos | 2026
// dto.go

package tracking

import (
	"time"
)

type AddUpdateRequest struct {
	ParcelID string `json:"parcel_id" validate:"required,uuid"`
	Status   string `json:"status"    validate:"required,min=1,max=50"`
	Location string `json:"location"  validate:"max=255"`
}

type UpdateResponse struct {
	ID        string    `json:"id"`
	ParcelID  string    `json:"parcel_id"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

func ToUpdateResponse(u *Update) UpdateResponse {
	return UpdateResponse{
		ID:        u.ID,
		ParcelID:  u.ParcelID,
		Status:    u.Status,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
	}
}

func ToUpdateResponseList(updates []Update) []UpdateResponse {
	responses := make([]UpdateResponse, 0, len(updates))
	for _, u := range updates {
		responses = append(responses, ToUpdateResponse(&u))
	}
	return responses
}
