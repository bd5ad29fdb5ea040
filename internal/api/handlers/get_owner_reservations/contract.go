package get_owner_reservations

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ReservationsService is the read service behind this handler.
type ReservationsService interface {
	GetOwnerReservations(ctx context.Context, filter domain.OwnerReservationsFilter, caller domain.Identity) ([]*domain.Reservation, error)
}

// OwnerResolver maps a path identifier, which may be an owner id or an
// account id, onto the owner record.
type OwnerResolver interface {
	Resolve(ctx context.Context, id int64) (*domain.Owner, error)
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
