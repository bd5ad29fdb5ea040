package update_reservation

import (
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// UpdateReservationRequest HTTP request model. All fields are optional;
// absent fields keep their stored values.
type UpdateReservationRequest struct {
	ResourceID  *int64  `json:"resourceId,omitempty"`
	Type        *string `json:"type,omitempty"`
	Status      *string `json:"status,omitempty"`
	StartTime   *string `json:"startTime,omitempty"` // RFC3339
	EndTime     *string `json:"endTime,omitempty"`   // RFC3339
	Description *string `json:"description,omitempty"`
}

// UpdateReservationResponse HTTP response model.
type UpdateReservationResponse struct {
	Updated int64 `json:"updated"`
}

// ToPatch converts the HTTP request into a domain patch.
func (r *UpdateReservationRequest) ToPatch() (domain.ReservationPatch, error) {
	patch := domain.ReservationPatch{
		ResourceID:  r.ResourceID,
		Description: r.Description,
	}

	if r.Type != nil {
		t := domain.ReservationType(*r.Type)
		patch.Type = &t
	}
	if r.Status != nil {
		s := domain.ReservationStatus(*r.Status)
		patch.Status = &s
	}
	if r.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *r.StartTime)
		if err != nil {
			return domain.ReservationPatch{}, err
		}
		patch.StartTime = &start
	}
	if r.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *r.EndTime)
		if err != nil {
			return domain.ReservationPatch{}, err
		}
		patch.EndTime = &end
	}

	return patch, nil
}
