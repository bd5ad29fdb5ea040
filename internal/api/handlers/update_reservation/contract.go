package update_reservation

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	updateReservation "github.com/altosdelparque/ADP-BookingService/internal/usecase/update_reservation"
)

// UpdateReservationUseCase is the use case behind this handler.
type UpdateReservationUseCase interface {
	Execute(ctx context.Context, req *updateReservation.Request) (*updateReservation.Response, error)
}

// ReservationReader fetches a reservation with the caller's access
// already checked. Used here so the ownership guard runs before the
// write path is entered.
type ReservationReader interface {
	GetByID(ctx context.Context, id int64, caller domain.Identity) (*domain.Reservation, error)
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
