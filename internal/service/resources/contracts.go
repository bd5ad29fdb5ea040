package resources

import (
	"context"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ResourceRegistry is the resource storage used by this service.
type ResourceRegistry interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	List(ctx context.Context, kind *domain.ResourceKind) ([]*domain.Resource, error)
}

// ReservationRepository supplies the bookings that availability is
// derived from.
type ReservationRepository interface {
	CountOverlapping(ctx context.Context, resourceID int64, start, end time.Time, excludeID *int64) (int, error)
}

// Logger is the logging interface consumed by this service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
