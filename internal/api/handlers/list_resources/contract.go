package list_resources

import (
	"context"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	resourcesService "github.com/altosdelparque/ADP-BookingService/internal/service/resources"
)

// ResourcesService is the read service behind this handler.
type ResourcesService interface {
	List(ctx context.Context, kind *domain.ResourceKind, from, to *time.Time) ([]resourcesService.ResourceAvailability, error)
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
