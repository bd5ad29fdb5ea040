package get_owner_reservations

import (
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ReservationResponse HTTP response model for one list entry.
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

// OwnerReservationsResponse HTTP response model.
type OwnerReservationsResponse struct {
	OwnerID      int64                 `json:"ownerId"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomain converts a reservation list into the HTTP model.
func FromDomain(ownerID int64, reservations []*domain.Reservation) *OwnerReservationsResponse {
	out := &OwnerReservationsResponse{
		OwnerID:      ownerID,
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, res := range reservations {
		out.Reservations = append(out.Reservations, ReservationResponse{
			ID:           res.ID,
			ResourceID:   res.ResourceID,
			ResourceKind: string(res.ResourceKind),
			Type:         string(res.Type),
			Status:       string(res.Status),
			OwnerID:      res.OwnerID,
			StartTime:    res.StartTime.Format(time.RFC3339),
			EndTime:      res.EndTime.Format(time.RFC3339),
			Description:  res.Description,
			CreatedAt:    res.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    res.UpdatedAt.Format(time.RFC3339),
		})
	}

	return out
}
