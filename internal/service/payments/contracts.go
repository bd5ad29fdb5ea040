package payments

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// PaymentRepository is the payment storage used by this service.
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
}

// Logger is the logging interface consumed by this service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
