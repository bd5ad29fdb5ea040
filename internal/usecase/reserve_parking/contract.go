package reserve_parking

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ReservationRepository is the reservation storage used by this use case.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// ResourceRegistry is the resource storage used by this use case.
type ResourceRegistry interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	ClaimParkingSpot(ctx context.Context, id, userID, vehicleTypeID int64) error
}

// OwnerRepository resolves the assignee, including the account-id fallback.
type OwnerRepository interface {
	Resolve(ctx context.Context, id int64) (*domain.Owner, error)
}

// LookupRepository validates foreign keys against the lookup tables.
type LookupRepository interface {
	VehicleTypeExists(ctx context.Context, id int64) (bool, error)
}

// TransactionManager wraps the read + conditional claim + insert.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface consumed by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
