package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	reservationRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/reservation"
	resourceRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/resource"
	"github.com/altosdelparque/ADP-BookingService/pkg/ptr"
)

// Request input of the update use case. Nil patch fields stay unchanged.
type Request struct {
	ID    int64
	Patch domain.ReservationPatch
}

// Response number of rows touched by the update.
type Response struct {
	Affected int64
}

// UseCase applies partial updates to a reservation. When the patch moves
// the reservation in time or onto another resource, the conflict scan
// re-runs excluding the reservation's own id, inside the same serializable
// transaction as the write.
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRegistry
	lookupRepo      LookupRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRegistry,
	lookupRepo LookupRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		lookupRepo:      lookupRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the update flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ID)

	if req.ID <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if req.Patch.Empty() {
		uc.logger.Warn("UpdateReservation: id=%d empty patch", req.ID)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if err := uc.validateLookups(ctx, &req.Patch); err != nil {
		return nil, err
	}

	var affected int64

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		current, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to load id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to load reservation: %v", ErrInternal, err)
		}

		// Effective schedule after the patch.
		resourceID := current.ResourceID
		start := current.StartTime
		end := current.EndTime
		if req.Patch.ResourceID != nil {
			resourceID = *req.Patch.ResourceID
		}
		if req.Patch.StartTime != nil {
			start = *req.Patch.StartTime
		}
		if req.Patch.EndTime != nil {
			end = *req.Patch.EndTime
		}

		if !domain.ValidateInterval(start, end) {
			uc.logger.Warn("UpdateReservation: id=%d invalid interval [%s, %s)", req.ID,
				start.Format(domain.DateTimeFormat), end.Format(domain.DateTimeFormat))
			return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
		}

		// Schedule changes re-run conflict detection, excluding ourselves:
		// a reservation can never conflict with its own row.
		if req.Patch.TouchesSchedule() {
			resource, err := uc.resourceRepo.GetByID(txCtx, resourceID)
			if err != nil {
				if errors.Is(err, resourceRepo.ErrResourceNotFound) {
					uc.logger.Warn("UpdateReservation: resource id=%d not found", resourceID)
					return ErrResourceNotFound
				}
				uc.logger.Error("UpdateReservation: failed to get resource id=%d: %v", resourceID, err)
				return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
			}
			if !resource.AcceptsBookings() {
				uc.logger.Warn("UpdateReservation: resource id=%d is under maintenance", resourceID)
				return ErrResourceUnderMaintenance
			}

			overlapping, err := uc.reservationRepo.CountOverlapping(txCtx, resourceID, start, end, ptr.Ptr(req.ID))
			if err != nil {
				uc.logger.Error("UpdateReservation: overlap scan failed for resource id=%d: %v", resourceID, err)
				return fmt.Errorf("%w: overlap scan failed: %v", ErrInternal, err)
			}
			if overlapping > 0 {
				uc.logger.Warn("UpdateReservation: id=%d would overlap %d reservation(s) on resource id=%d",
					req.ID, overlapping, resourceID)
				return ErrTimeConflict
			}
		}

		affected, err = uc.reservationRepo.Update(txCtx, req.ID, req.Patch)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to update id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		// A patch that takes a parking assignment out of the active set
		// must release the spot, assignment fields included, the same way
		// a cancel does.
		if uc.patchReleasesSpot(current, &req.Patch) {
			if err := uc.resourceRepo.ReleaseParkingSpot(txCtx, current.ResourceID); err != nil {
				uc.logger.Error("UpdateReservation: failed to release spot id=%d: %v", current.ResourceID, err)
				return fmt.Errorf("%w: failed to release parking spot: %v", ErrInternal, err)
			}
		} else if err := uc.refreshProjection(txCtx, current.ResourceID); err != nil {
			return err
		}
		if resourceID != current.ResourceID {
			if err := uc.refreshProjection(txCtx, resourceID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: id=%d updated, %d row(s) affected", req.ID, affected)
	return &Response{Affected: affected}, nil
}

func (uc *UseCase) validateLookups(ctx context.Context, patch *domain.ReservationPatch) error {
	if patch.Type != nil {
		ok, err := uc.lookupRepo.ReservationTypeExists(ctx, *patch.Type)
		if err != nil {
			uc.logger.Error("UpdateReservation: type lookup failed: %v", err)
			return fmt.Errorf("%w: type lookup failed: %v", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("UpdateReservation: unknown reservation type %q", *patch.Type)
			return ErrUnknownType
		}
	}

	if patch.Status != nil {
		ok, err := uc.lookupRepo.ReservationStatusExists(ctx, *patch.Status)
		if err != nil {
			uc.logger.Error("UpdateReservation: status lookup failed: %v", err)
			return fmt.Errorf("%w: status lookup failed: %v", ErrInternal, err)
		}
		if !ok {
			uc.logger.Warn("UpdateReservation: unknown reservation status %q", *patch.Status)
			return ErrUnknownStatus
		}
	}

	return nil
}

// patchReleasesSpot reports whether the patch moves a parking assignment
// out of the active set.
func (uc *UseCase) patchReleasesSpot(current *domain.Reservation, patch *domain.ReservationPatch) bool {
	if patch.Status == nil || !current.IsParkingAssignment() {
		return false
	}
	next := *current
	next.Status = *patch.Status
	return !next.IsActive()
}

func (uc *UseCase) refreshProjection(ctx context.Context, resourceID int64) error {
	now := uc.timeProvider.Now()
	horizon := now.AddDate(1, 0, 0)

	active, err := uc.reservationRepo.ListActiveByResource(ctx, resourceID, now, horizon)
	if err != nil {
		uc.logger.Error("UpdateReservation: failed to list active reservations for projection: %v", err)
		return fmt.Errorf("%w: failed to refresh status projection: %v", ErrInternal, err)
	}

	if err := uc.resourceRepo.SetStatus(ctx, resourceID, domain.ProjectResourceStatus(active, now, horizon)); err != nil {
		uc.logger.Error("UpdateReservation: failed to write status projection: %v", err)
		return fmt.Errorf("%w: failed to write status projection: %v", ErrInternal, err)
	}

	return nil
}
