package get_resource

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ResourcesService is the read service behind this handler.
type ResourcesService interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
