package transition_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	paymentRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/payment"
)

// Request input of the payment transition use case.
type Request struct {
	PaymentID   int64
	NewStatusID int64
}

// Response the payment after the transition.
type Response struct {
	Payment *domain.Payment
}

// UseCase moves a payment through its status state machine. The current
// status is read under a row lock, validated against the transition table
// and written back inside one transaction; an unlisted pair fails with
// ErrInvalidTransition and performs no write.
type UseCase struct {
	paymentRepo PaymentRepository
	lookupRepo  LookupRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	paymentRepo PaymentRepository,
	lookupRepo LookupRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		lookupRepo:  lookupRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute runs the transition flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionPayment: payment=%d, newStatus=%d", req.PaymentID, req.NewStatusID)

	if req.PaymentID <= 0 {
		return nil, fmt.Errorf("%w: paymentID must be positive", ErrInvalidInput)
	}
	if !domain.ValidPaymentStatus(req.NewStatusID) {
		uc.logger.Warn("TransitionPayment: status id=%d outside the known set", req.NewStatusID)
		return nil, ErrUnknownStatus
	}

	// The status must also exist as a lookup row; the domain constants
	// and the table are seeded together but the table is authoritative.
	ok, err := uc.lookupRepo.PaymentStatusExists(ctx, req.NewStatusID)
	if err != nil {
		uc.logger.Error("TransitionPayment: status lookup failed: %v", err)
		return nil, fmt.Errorf("%w: status lookup failed: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("TransitionPayment: status id=%d has no lookup row", req.NewStatusID)
		return nil, ErrUnknownStatus
	}

	var result *domain.Payment

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		payment, err := uc.paymentRepo.GetByID(txCtx, req.PaymentID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				uc.logger.Warn("TransitionPayment: payment id=%d not found", req.PaymentID)
				return ErrPaymentNotFound
			}
			uc.logger.Error("TransitionPayment: failed to load payment id=%d: %v", req.PaymentID, err)
			return fmt.Errorf("%w: failed to load payment: %v", ErrInternal, err)
		}

		if domain.PaymentStatusTerminal(payment.StatusID) {
			uc.logger.Warn("TransitionPayment: payment id=%d is already in terminal status %d",
				req.PaymentID, payment.StatusID)
			return ErrInvalidTransition
		}
		if !domain.CanTransitionPayment(payment.StatusID, req.NewStatusID) {
			uc.logger.Warn("TransitionPayment: payment id=%d transition %d -> %d not permitted",
				req.PaymentID, payment.StatusID, req.NewStatusID)
			return ErrInvalidTransition
		}

		if err := uc.paymentRepo.UpdateStatus(txCtx, req.PaymentID, req.NewStatusID); err != nil {
			uc.logger.Error("TransitionPayment: failed to update payment id=%d: %v", req.PaymentID, err)
			return fmt.Errorf("%w: failed to update payment: %v", ErrInternal, err)
		}

		payment.StatusID = req.NewStatusID
		result = payment
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("TransitionPayment: payment id=%d moved to status=%d", req.PaymentID, req.NewStatusID)
	return &Response{Payment: result}, nil
}
