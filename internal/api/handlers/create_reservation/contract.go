package create_reservation

import (
	"context"

	createReservation "github.com/altosdelparque/ADP-BookingService/internal/usecase/create_reservation"
)

// CreateReservationUseCase is the use case behind this handler.
type CreateReservationUseCase interface {
	Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
