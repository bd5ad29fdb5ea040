package create_reservation

import (
	"fmt"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}
	if req.ResourceKind != domain.KindFacility && req.ResourceKind != domain.KindParking {
		return fmt.Errorf("%w: unknown resource kind %q", ErrInvalidInput, req.ResourceKind)
	}
	if req.Type == "" {
		return fmt.Errorf("%w: type is required", ErrInvalidInput)
	}
	if !domain.ValidateInterval(req.StartTime, req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}
	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
