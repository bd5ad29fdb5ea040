package reserve_parking

import (
	"context"

	reserveParking "github.com/altosdelparque/ADP-BookingService/internal/usecase/reserve_parking"
)

// ReserveParkingUseCase is the use case behind this handler.
type ReserveParkingUseCase interface {
	Execute(ctx context.Context, req *reserveParking.Request) (*reserveParking.Response, error)
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
