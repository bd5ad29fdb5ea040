package create_reservation

import (
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// Request input of the create reservation use case. OwnerID may be an
// owner-table id or an underlying account id; resolution falls back
// transparently.
type Request struct {
	OwnerID      int64
	ResourceID   int64
	ResourceKind domain.ResourceKind
	Type         domain.ReservationType
	Status       domain.ReservationStatus // empty means PENDING
	StartTime    time.Time
	EndTime      time.Time
	Description  *string
}

// Response the created reservation.
type Response struct {
	ID           int64
	ResourceID   int64
	ResourceKind domain.ResourceKind
	Type         domain.ReservationType
	Status       domain.ReservationStatus
	OwnerID      int64
	StartTime    time.Time
	EndTime      time.Time
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:           res.ID,
		ResourceID:   res.ResourceID,
		ResourceKind: res.ResourceKind,
		Type:         res.Type,
		Status:       res.Status,
		OwnerID:      res.OwnerID,
		StartTime:    res.StartTime,
		EndTime:      res.EndTime,
		Description:  res.Description,
		CreatedAt:    res.CreatedAt,
		UpdatedAt:    res.UpdatedAt,
	}
}
