package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	reservationRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/reservation"
)

// Service read and lifecycle operations on existing reservations.
// Ownership checks run against the identity resolved by the API layer:
// admins act on any owner, residents only on their own.
type Service struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRegistry
	txManager       TransactionManager
	logger          Logger
}

// NewService creates the reservations service.
func NewService(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRegistry,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID fetches a reservation the caller is allowed to see.
func (s *Service) GetByID(ctx context.Context, id int64, caller domain.Identity) (*domain.Reservation, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, caller.UserID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !caller.MayActOn(res.OwnerID) {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return res, nil
}

// GetOwnerReservations returns an owner's history, optionally filtered by
// status.
func (s *Service) GetOwnerReservations(ctx context.Context, filter domain.OwnerReservationsFilter, caller domain.Identity) ([]*domain.Reservation, error) {
	s.logger.Info("GetOwnerReservations: owner=%d, user=%d", filter.OwnerID, caller.UserID)

	if !caller.MayActOn(filter.OwnerID) {
		s.logger.Warn("GetOwnerReservations: access denied for user=%d to owner=%d", caller.UserID, filter.OwnerID)
		return nil, ErrAccessDenied
	}

	reservations, err := s.reservationRepo.ListByOwner(ctx, filter)
	if err != nil {
		s.logger.Error("GetOwnerReservations: repository error for owner=%d: %v", filter.OwnerID, err)
		return nil, fmt.Errorf("%w: GetOwnerReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnerReservations: fetched %d reservation(s) for owner=%d", len(reservations), filter.OwnerID)
	return reservations, nil
}

// Cancel cancels a reservation with a reason. Cancelling a parking
// assignment releases the spot in the same transaction; for facilities
// the status projection is recomputed from the remaining bookings.
func (s *Service) Cancel(ctx context.Context, id int64, reason string, caller domain.Identity) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", id, caller.UserID)

	if len(reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Cancel: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if !caller.MayActOn(res.OwnerID) {
			s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", caller.UserID, id)
			return ErrAccessDenied
		}

		if !res.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
			return ErrCannotCancel
		}

		if err := s.reservationRepo.Cancel(txCtx, id, reason); err != nil {
			s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		if err := s.syncResource(txCtx, res); err != nil {
			return err
		}

		s.logger.Info("Cancel: reservation id=%d cancelled", id)
		return nil
	})
}

// Delete removes a reservation row entirely. Admin-only; residents cancel.
func (s *Service) Delete(ctx context.Context, id int64, caller domain.Identity) error {
	s.logger.Info("Delete: deleting reservation id=%d by user=%d", id, caller.UserID)

	if !caller.IsAdmin() {
		s.logger.Warn("Delete: access denied for non-admin user=%d", caller.UserID)
		return ErrAccessDenied
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				s.logger.Warn("Delete: reservation id=%d not found", id)
				return ErrReservationNotFound
			}
			s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("Delete: failed to delete reservation id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		if err := s.syncResource(txCtx, res); err != nil {
			return err
		}

		s.logger.Info("Delete: reservation id=%d deleted", id)
		return nil
	})
}

// syncResource brings the resource projection back in line after a
// reservation left the active set.
func (s *Service) syncResource(ctx context.Context, res *domain.Reservation) error {
	if res.IsParkingAssignment() {
		if err := s.resourceRepo.ReleaseParkingSpot(ctx, res.ResourceID); err != nil {
			s.logger.Error("syncResource: failed to release spot id=%d: %v", res.ResourceID, err)
			return fmt.Errorf("%w: failed to release parking spot: %v", ErrInternal, err)
		}
		return nil
	}

	now := time.Now()
	horizon := now.AddDate(1, 0, 0)
	active, err := s.reservationRepo.ListActiveByResource(ctx, res.ResourceID, now, horizon)
	if err != nil {
		s.logger.Error("syncResource: failed to list active reservations for resource id=%d: %v", res.ResourceID, err)
		return fmt.Errorf("%w: failed to refresh status projection: %v", ErrInternal, err)
	}

	if err := s.resourceRepo.SetStatus(ctx, res.ResourceID, domain.ProjectResourceStatus(active, now, horizon)); err != nil {
		s.logger.Error("syncResource: failed to write status projection for resource id=%d: %v", res.ResourceID, err)
		return fmt.Errorf("%w: failed to write status projection: %v", ErrInternal, err)
	}

	return nil
}
