package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	paymentRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/payment"
)

// Service read operations on payments. Status writes live in the
// transition use case exclusively.
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService creates the payments service.
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID fetches a payment the caller is allowed to see.
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.Identity) (*domain.Payment, error) {
	s.logger.Info("GetByID: fetching payment id=%d for user=%d", id, caller.UserID)

	p, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByID: payment id=%d not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByID: repository error for payment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !caller.MayActOn(p.OwnerID) {
		s.logger.Warn("GetByID: access denied for user=%d to payment id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return p, nil
}
