package get_resource

import (
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/domain"
)

// ResourceResponse HTTP response model.
type ResourceResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	Capacity *int   `json:"capacity,omitempty"`

	AssignedUserID *int64 `json:"assignedUserId,omitempty"`
	VehicleTypeID  *int64 `json:"vehicleTypeId,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// FromDomain converts a domain resource into the HTTP model.
func FromDomain(res *domain.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:             res.ID,
		Name:           res.Name,
		Kind:           string(res.Kind),
		Status:         string(res.Status),
		Capacity:       res.Capacity,
		AssignedUserID: res.AssignedUserID,
		VehicleTypeID:  res.VehicleTypeID,
		CreatedAt:      res.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      res.UpdatedAt.Format(time.RFC3339),
	}
}
