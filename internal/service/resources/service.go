package resources

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	resourceRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/resource"
)

// ResourceAvailability a resource plus its real availability in a window.
// Availability comes from the overlap scan, never from the cached status
// column — bookings are the source of truth.
type ResourceAvailability struct {
	Resource  *domain.Resource
	Available *bool // nil when no window was requested
}

// Service read operations on the resource registry.
type Service struct {
	resourceRepo    ResourceRegistry
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates the resources service.
func NewService(resourceRepo ResourceRegistry, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID fetches a single resource.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	s.logger.Info("GetByID: fetching resource id=%d", id)

	res, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return res, nil
}

// List returns resources, optionally filtered by kind. When a [from, to)
// window is supplied, each entry carries whether the resource is free in
// that window (derived from active bookings; maintenance is never free).
func (s *Service) List(ctx context.Context, kind *domain.ResourceKind, from, to *time.Time) ([]ResourceAvailability, error) {
	s.logger.Info("List: listing resources, kind=%v", kind)

	withWindow := from != nil && to != nil
	if withWindow && !domain.ValidateInterval(*from, *to) {
		s.logger.Warn("List: invalid availability window")
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	all, err := s.resourceRepo.List(ctx, kind)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]ResourceAvailability, 0, len(all))
	for _, res := range all {
		entry := ResourceAvailability{Resource: res}

		if withWindow {
			available := false
			if res.AcceptsBookings() {
				overlapping, err := s.reservationRepo.CountOverlapping(ctx, res.ID, *from, *to, nil)
				if err != nil {
					s.logger.Error("List: overlap scan failed for resource id=%d: %v", res.ID, err)
					return nil, fmt.Errorf("%w: List - overlap scan failed: %v", ErrInternal, err)
				}
				available = overlapping == 0
			}
			entry.Available = &available
		}

		result = append(result, entry)
	}

	s.logger.Info("List: returning %d resource(s)", len(result))
	return result, nil
}
