package domain

import "time"

// ResourceKind distinguishes the two families of bookable resources.
type ResourceKind string

const (
	KindFacility ResourceKind = "FACILITY"
	KindParking  ResourceKind = "PARKING"
)

// ResourceStatus is the cached projection of a resource's availability.
// Bookings are the source of truth; the status column is updated in the
// same transaction as the booking write and must never be read as
// authoritative for conflict decisions. MAINTENANCE is the exception:
// it is set administratively and blocks new bookings outright.
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "AVAILABLE"
	ResourceOccupied    ResourceStatus = "OCCUPIED"
	ResourceReserved    ResourceStatus = "RESERVED"
	ResourceMaintenance ResourceStatus = "MAINTENANCE"
)

// Resource represents a bookable entity of the complex: a shared facility
// (gym, pool, party room) or a parking spot.
type Resource struct {
	ID       int64
	Name     string
	Kind     ResourceKind
	Status   ResourceStatus
	Capacity *int // facilities only, nil for parking spots

	// Parking assignment fields, populated while a spot is claimed.
	AssignedUserID *int64
	VehicleTypeID  *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AcceptsBookings returns false while the resource is under maintenance.
func (r *Resource) AcceptsBookings() bool {
	return r.Status != ResourceMaintenance
}

// IsParkingSpot returns true for parking resources.
func (r *Resource) IsParkingSpot() bool {
	return r.Kind == KindParking
}

// ProjectResourceStatus derives the status column from the active
// reservations of a resource. A window covering now means OCCUPIED, any
// upcoming window inside [now, horizon) means RESERVED, otherwise
// AVAILABLE. Maintenance is never derived here; it is set
// administratively and wins over the projection.
func ProjectResourceStatus(reservations []*Reservation, now, horizon time.Time) ResourceStatus {
	status := ResourceAvailable
	for _, r := range reservations {
		if !r.IsActive() || !Overlaps(r.StartTime, r.EndTime, now, horizon) {
			continue
		}
		if r.StartTime.After(now) {
			status = ResourceReserved
			continue
		}
		return ResourceOccupied
	}
	return status
}

// ValidResourceStatus reports whether s is a known resource status.
func ValidResourceStatus(s ResourceStatus) bool {
	switch s {
	case ResourceAvailable, ResourceOccupied, ResourceReserved, ResourceMaintenance:
		return true
	}
	return false
}
