package transition_payment

import (
	"context"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	transitionPayment "github.com/altosdelparque/ADP-BookingService/internal/usecase/transition_payment"
)

// TransitionPaymentUseCase is the use case behind this handler.
type TransitionPaymentUseCase interface {
	Execute(ctx context.Context, req *transitionPayment.Request) (*transitionPayment.Response, error)
}

// PaymentReader fetches a payment with the caller's access already
// checked. Used here so the ownership guard runs before any write.
type PaymentReader interface {
	GetByID(ctx context.Context, id int64, caller domain.Identity) (*domain.Payment, error)
}

// Logger is the logging interface consumed by this handler.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
