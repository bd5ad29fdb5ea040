package reserve_parking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	ownerRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/owner"
	resourceRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/resource"
	"github.com/altosdelparque/ADP-BookingService/pkg/ptr"
)

// Request input of the parking reservation use case.
type Request struct {
	ParkingID     int64
	UserID        int64
	VehicleTypeID int64
	StartTime     time.Time
	EndTime       time.Time
}

// Response the completed parking assignment.
type Response struct {
	ReservationID int64
	ParkingID     int64
	UserID        int64
	VehicleTypeID int64
	StartTime     time.Time
	EndTime       time.Time
	DurationDays  int
}

// UseCase reserves a parking spot with the read-then-conditional-write
// pattern: read the status, reject anything but AVAILABLE, then claim via
// UPDATE ... WHERE status = 'AVAILABLE'. A concurrent claimer that slipped
// past the read is caught by zero affected rows, which rolls the whole
// transaction back — the spot stays untouched and no booking row survives.
type UseCase struct {
	reservationRepo ReservationRepository
	resourceRepo    ResourceRegistry
	ownerRepo       OwnerRepository
	lookupRepo      LookupRepository
	txManager       TransactionManager
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
		logger:          logger,
	}
}

// Execute runs the parking reservation flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveParking: spot=%d, user=%d, vehicleType=%d, window=[%s, %s)",
		req.ParkingID, req.UserID, req.VehicleTypeID,
		req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))

	// 1. Shape validation.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveParking: validation failed: %v", err)
		return nil, err
	}

	// 2. Duration in whole days, rounded up. Zero or negative is rejected
	// before any write.
	durationDays := domain.DurationDays(req.StartTime, req.EndTime)
	if durationDays <= 0 {
		uc.logger.Warn("ReserveParking: non-positive duration for window [%s, %s)",
			req.StartTime.Format(domain.DateTimeFormat), req.EndTime.Format(domain.DateTimeFormat))
		return nil, fmt.Errorf("%w: reservation must span at least one day", ErrInvalidInput)
	}

	// 3. Resolve the assignee (owner-or-account id fallback).
	assignee, err := uc.ownerRepo.Resolve(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			uc.logger.Warn("ReserveParking: user id=%d not resolvable", req.UserID)
			return nil, ErrUnknownUser
		}
		uc.logger.Error("ReserveParking: failed to resolve user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to resolve user: %v", ErrInternal, err)
	}

	// 4. Vehicle type must be a lookup row.
	ok, err := uc.lookupRepo.VehicleTypeExists(ctx, req.VehicleTypeID)
	if err != nil {
		uc.logger.Error("ReserveParking: vehicle type lookup failed: %v", err)
		return nil, fmt.Errorf("%w: vehicle type lookup failed: %v", ErrInternal, err)
	}
	if !ok {
		uc.logger.Warn("ReserveParking: unknown vehicle type id=%d", req.VehicleTypeID)
		return nil, ErrUnknownVehicleType
	}

	var result *domain.Reservation

	// 5. Read + conditional claim + booking row, all in one transaction.
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		spot, err := uc.resourceRepo.GetByID(txCtx, req.ParkingID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("ReserveParking: spot id=%d not found", req.ParkingID)
				return ErrSpotNotFound
			}
			uc.logger.Error("ReserveParking: failed to get spot id=%d: %v", req.ParkingID, err)
			return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
		}

		if !spot.IsParkingSpot() {
			uc.logger.Warn("ReserveParking: resource id=%d is %s, not a parking spot", req.ParkingID, spot.Kind)
			return ErrNotAParkingSpot
		}

		if spot.Status != domain.ResourceAvailable {
			uc.logger.Warn("ReserveParking: spot id=%d is %s", req.ParkingID, spot.Status)
			return ErrSpotNotAvailable
		}

		// The conditional write is the race detector: if someone claimed
		// the spot after our read, zero rows match and we roll back.
		if err := uc.resourceRepo.ClaimParkingSpot(txCtx, req.ParkingID, assignee.UserID, req.VehicleTypeID); err != nil {
			if errors.Is(err, resourceRepo.ErrClaimLost) {
				uc.logger.Warn("ReserveParking: lost claim race for spot id=%d", req.ParkingID)
				return ErrSpotClaimLost
			}
			uc.logger.Error("ReserveParking: failed to claim spot id=%d: %v", req.ParkingID, err)
			return fmt.Errorf("%w: failed to claim spot: %v", ErrInternal, err)
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			ResourceID:     req.ParkingID,
			ResourceKind:   domain.KindParking,
			Type:           domain.TypeParking,
			Status:         domain.StatusConfirmed,
			OwnerID:        assignee.ID,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			VehicleTypeID:  ptr.Ptr(req.VehicleTypeID),
			AssignedUserID: ptr.Ptr(assignee.UserID),
		})
		if err != nil {
			uc.logger.Error("ReserveParking: failed to insert booking row: %v", err)
			return fmt.Errorf("%w: failed to insert booking row: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveParking: spot id=%d reserved for user=%d, %d day(s), reservation id=%d",
		req.ParkingID, assignee.UserID, durationDays, result.ID)

	return &Response{
		ReservationID: result.ID,
		ParkingID:     req.ParkingID,
		UserID:        assignee.UserID,
		VehicleTypeID: req.VehicleTypeID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		DurationDays:  durationDays,
	}, nil
}

func validateRequest(req *Request) error {
	if req.ParkingID <= 0 {
		return fmt.Errorf("%w: parkingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.VehicleTypeID <= 0 {
		return fmt.Errorf("%w: vehicleTypeID must be positive", ErrInvalidInput)
	}
	if !domain.ValidateInterval(req.StartTime, req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	return nil
}
