package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	ownerRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/owner"
	resourceRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/resource"
)

// UseCase creates reservations. The overlap scan and the insert run inside
// one serializable transaction so two concurrent requests for the same
// resource cannot both pass the conflict check.
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRegistry
	ownerRepo       OwnerRepository
	lookupRepo      LookupRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	reservationRepo ReservationRepository,
	resourceRepo ResourceRegistry,
	ownerRepo OwnerRepository,
	lookupRepo LookupRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		resourceRepo:    resourceRepo,
		ownerRepo:       ownerRepo,
		lookupRepo:      lookupRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute runs the create reservation flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: owner=%d, resource=%d, kind=%s, type=%s, window=[%s, %s)",
		req.OwnerID, req.ResourceID, req.ResourceKind, req.Type,
		req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	// 1. Shape validation before any read.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	if req.Status == "" {
		req.Status = domain.StatusPending
	}

	// 2. Resolve the owner. The id may live in either id space; Resolve
	// falls back from owner id to account id.
	owner, err := uc.ownerRepo.Resolve(ctx, req.OwnerID)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			uc.logger.Warn("CreateReservation: owner id=%d not resolvable in either id space", req.OwnerID)
			return nil, ErrUnknownOwner
		}
		uc.logger.Error("CreateReservation: failed to resolve owner id=%d: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to resolve owner: %v", ErrInternal, err)
	}
	if owner.ID != req.OwnerID {
		uc.logger.Warn("CreateReservation: owner id=%d resolved via account-id fallback to owner=%d",
			req.OwnerID, owner.ID)
	}

	// 3. Validate type and status against the lookup tables.
	if err := uc.validateLookups(ctx, req); err != nil {
		return nil, err
	}

	var result *domain.Reservation

	// 4. Conflict scan + insert + projection, all or nothing.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		resource, err := uc.resourceRepo.GetByID(txCtx, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("CreateReservation: resource id=%d not found", req.ResourceID)
				return ErrResourceNotFound
			}
			uc.logger.Error("CreateReservation: failed to get resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if resource.Kind != req.ResourceKind {
			uc.logger.Warn("CreateReservation: resource id=%d is %s, request says %s",
				req.ResourceID, resource.Kind, req.ResourceKind)
			return fmt.Errorf("%w: resource kind mismatch", ErrInvalidInput)
		}

		if !resource.AcceptsBookings() {
			uc.logger.Warn("CreateReservation: resource id=%d is under maintenance", req.ResourceID)
			return ErrResourceUnderMaintenance
		}

		overlapping, err := uc.reservationRepo.CountOverlapping(txCtx, req.ResourceID, req.StartTime, req.EndTime, nil)
		if err != nil {
			uc.logger.Error("CreateReservation: overlap scan failed for resource id=%d: %v", req.ResourceID, err)
			return fmt.Errorf("%w: overlap scan failed: %v", ErrInternal, err)
		}
		if overlapping > 0 {
			uc.logger.Warn("CreateReservation: resource id=%d has %d overlapping reservation(s) in [%s, %s)",
				req.ResourceID, overlapping,
				req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))
			return ErrTimeConflict
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ResourceID:   req.ResourceID,
			ResourceKind: req.ResourceKind,
			Type:         req.Type,
			Status:       req.Status,
			OwnerID:      owner.ID,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			Description:  req.Description,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to insert reservation: %v", err)
			return fmt.Errorf("%w: failed to insert reservation: %v", ErrInternal, err)
		}

		// Refresh the cached status projection in the same transaction.
		if err := uc.refreshProjection(txCtx, req.ResourceID); err != nil {
			return err
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d for owner=%d", result.ID, owner.ID)
	return fromDomain(result), nil
}

func (uc *UseCase) validateLookups(ctx context.Context, req *Request) error {
	ok, err := uc.lookupRepo.ReservationTypeExists(ctx, req.Type)
	if err != nil {
		uc.logger.Error("CreateReservation: type lookup failed: %v", err)
		return fmt.Errorf("%w: type lookup failed: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("CreateReservation: unknown reservation type %q", req.Type)
		return ErrUnknownType
	}

	ok, err = uc.lookupRepo.ReservationStatusExists(ctx, req.Status)
	if err != nil {
		uc.logger.Error("CreateReservation: status lookup failed: %v", err)
		return fmt.Errorf("%w: status lookup failed: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("CreateReservation: unknown reservation status %q", req.Status)
		return ErrUnknownStatus
	}

	return nil
}

// refreshProjection recomputes the resource status column from the active
// bookings. Bookings are authoritative; the column is a cache.
func (uc *UseCase) refreshProjection(ctx context.Context, resourceID int64) error {
	now := uc.timeProvider.Now()
	horizon := now.AddDate(1, 0, 0)

	active, err := uc.reservationRepo.ListActiveByResource(ctx, resourceID, now, horizon)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to list active reservations for projection: %v", err)
		return fmt.Errorf("%w: failed to refresh status projection: %v", ErrInternal, err)
	}

	if err := uc.resourceRepo.SetStatus(ctx, resourceID, domain.ProjectResourceStatus(active, now, horizon)); err != nil {
		uc.logger.Error("CreateReservation: failed to write status projection: %v", err)
		return fmt.Errorf("%w: failed to write status projection: %v", ErrInternal, err)
	}

	return nil
}
