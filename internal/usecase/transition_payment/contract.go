package transition_payment

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// PaymentRepository is the payment storage used by this use case.
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id, statusID int64) error
}

// LookupRepository validates the target status against the lookup table.
type LookupRepository interface {
	PaymentStatusExists(ctx context.Context, id int64) (bool, error)
}

// TransactionManager wraps the read-validate-write sequence so two
// concurrent transitions on the same payment cannot lose an update.
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging interface consumed by this use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
