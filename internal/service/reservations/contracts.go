package reservations

import (
	"context"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ReservationRepository is the reservation storage used by this service.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListByOwner(ctx context.Context, filter domain.OwnerReservationsFilter) ([]*domain.Reservation, error)
	ListActiveByResource(ctx context.Context, resourceID int64, from, to time.Time) ([]*domain.Reservation, error)
	Cancel(ctx context.Context, id int64, reason string) error
	Delete(ctx context.Context, id int64) error
}

// ResourceRegistry is the resource storage used by this service.
type ResourceRegistry interface {
	SetStatus(ctx context.Context, id int64, status domain.ResourceStatus) error
	ReleaseParkingSpot(ctx context.Context, id int64) error
}

// TransactionManager wraps cancel/delete so the booking row and the
// resource projection change together.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface consumed by this service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
