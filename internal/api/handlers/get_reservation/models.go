package get_reservation

import (
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

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

	VehicleTypeID  *int64 `json:"vehicleTypeId,omitempty"`
	AssignedUserID *int64 `json:"assignedUserId,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain converts a domain reservation into the HTTP model.
func FromDomain(res *domain.Reservation) *ReservationResponse {
	out := &ReservationResponse{
		ID:                 res.ID,
		ResourceID:         res.ResourceID,
		ResourceKind:       string(res.ResourceKind),
		Type:               string(res.Type),
		Status:             string(res.Status),
		OwnerID:            res.OwnerID,
		StartTime:          res.StartTime.Format(time.RFC3339),
		EndTime:            res.EndTime.Format(time.RFC3339),
		Description:        res.Description,
		VehicleTypeID:      res.VehicleTypeID,
		AssignedUserID:     res.AssignedUserID,
		CancellationReason: res.CancellationReason,
		CreatedAt:          res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          res.UpdatedAt.Format(time.RFC3339),
	}

	if res.CancelledAt != nil {
		cancelled := res.CancelledAt.Format(time.RFC3339)
		out.CancelledAt = &cancelled
	}

	return out
}
