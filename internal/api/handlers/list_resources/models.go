package list_resources

import (
	"time"

	resourcesService "github.com/altosdelparque/ADP-BookingService/internal/service/resources"
)

// ResourceResponse HTTP response model for one list entry. Available is
// present only when the request carried an availability window.
type ResourceResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
	Capacity *int   `json:"capacity,omitempty"`

	AssignedUserID *int64 `json:"assignedUserId,omitempty"`
	VehicleTypeID  *int64 `json:"vehicleTypeId,omitempty"`

	Available *bool `json:"available,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ListResourcesResponse HTTP response model.
type ListResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// FromService converts service entries into the HTTP model.
func FromService(entries []resourcesService.ResourceAvailability) *ListResourcesResponse {
	out := &ListResourcesResponse{Resources: make([]ResourceResponse, 0, len(entries))}

	for _, e := range entries {
		out.Resources = append(out.Resources, ResourceResponse{
			ID:             e.Resource.ID,
			Name:           e.Resource.Name,
			Kind:           string(e.Resource.Kind),
			Status:         string(e.Resource.Status),
			Capacity:       e.Resource.Capacity,
			AssignedUserID: e.Resource.AssignedUserID,
			VehicleTypeID:  e.Resource.VehicleTypeID,
			Available:      e.Available,
			CreatedAt:      e.Resource.CreatedAt.Format(time.RFC3339),
			UpdatedAt:      e.Resource.UpdatedAt.Format(time.RFC3339),
		})
	}

	return out
}
