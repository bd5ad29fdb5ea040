package delete_reservation

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ReservationsService is the lifecycle service behind this handler.
type ReservationsService interface {
	Delete(ctx context.Context, id int64, caller domain.Identity) error
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
