package create_reservation

import (
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	createReservation "github.com/altosdelparque/ADP-BookingService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model.
type CreateReservationRequest struct {
	OwnerID      int64   `json:"ownerId"`
	ResourceID   int64   `json:"resourceId"`
	ResourceKind string  `json:"resourceKind"`
	Type         string  `json:"type"`
	Status       string  `json:"status,omitempty"`
	StartTime    string  `json:"startTime"` // RFC3339
	EndTime      string  `json:"endTime"`   // RFC3339
	Description  *string `json:"description,omitempty"`
}

// ReservationResponse HTTP response model.
type ReservationResponse struct {
	ID           int64   `json:"id"`
	ResourceID   int64   `json:"resourceId"`
	ResourceKind string  `json:"resourceKind"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	OwnerID      int64   `json:"ownerId"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Description  *string `json:"description,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	start, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		OwnerID:      r.OwnerID,
		ResourceID:   r.ResourceID,
		ResourceKind: domain.ResourceKind(r.ResourceKind),
		Type:         domain.ReservationType(r.Type),
		Status:       domain.ReservationStatus(r.Status),
		StartTime:    start,
		EndTime:      end,
		Description:  r.Description,
	}, nil
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:           resp.ID,
		ResourceID:   resp.ResourceID,
		ResourceKind: string(resp.ResourceKind),
		Type:         string(resp.Type),
		Status:       string(resp.Status),
		OwnerID:      resp.OwnerID,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		EndTime:      resp.EndTime.Format(time.RFC3339),
		Description:  resp.Description,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}
