package create_reservation

import (
	"context"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ReservationRepository is the reservation storage used by this use case.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	CountOverlapping(ctx context.Context, resourceID int64, start, end time.Time, excludeID *int64) (int, error)
	ListActiveByResource(ctx context.Context, resourceID int64, from, to time.Time) ([]*domain.Reservation, error)
}

// ResourceRegistry is the resource storage used by this use case.
type ResourceRegistry interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	SetStatus(ctx context.Context, id int64, status domain.ResourceStatus) error
}

// OwnerRepository resolves owner identifiers, including the account-id
// fallback.
type OwnerRepository interface {
	Resolve(ctx context.Context, id int64) (*domain.Owner, error)
}

// LookupRepository validates foreign keys against the lookup tables.
type LookupRepository interface {
	ReservationTypeExists(ctx context.Context, t domain.ReservationType) (bool, error)
	ReservationStatusExists(ctx context.Context, s domain.ReservationStatus) (bool, error)
}

// TransactionManager runs the conflict scan and insert atomically.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface consumed by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
