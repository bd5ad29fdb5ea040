package domain

import "time"

// ReservationType classifies what is being booked.
type ReservationType string

const (
	TypeRoom          ReservationType = "ROOM"
	TypeParking       ReservationType = "PARKING"
	TypeGym           ReservationType = "GYM"
	TypeCommunityRoom ReservationType = "COMMUNITY_ROOM"
	TypeSports        ReservationType = "SPORTS"
)

// ReservationStatus represents the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusNoShow    ReservationStatus = "NO_SHOW"
)

// ActiveStatuses are the statuses that occupy the resource's time window.
// Only these participate in overlap detection.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}

// InactiveStatuses are excluded from overlap scans.
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}

// Reservation is a time-bounded claim on a resource by an owner.
// Intervals are half-open: [StartTime, EndTime).
type Reservation struct {
	ID           int64
	ResourceID   int64
	ResourceKind ResourceKind
	Type         ReservationType
	Status       ReservationStatus
	OwnerID      int64
	StartTime    time.Time
	EndTime      time.Time
	Description  *string

	// Parking assignment fields, set only when Type == TypeParking.
	VehicleTypeID  *int64
	AssignedUserID *int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation occupies its time window.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled && r.Status != StatusNoShow
}

// CanBeCancelled returns true if the reservation may still be cancelled.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeEditedByOwner returns true while owner edits are still allowed.
// Once confirmed, only status moves and admin updates may touch it.
func (r *Reservation) CanBeEditedByOwner() bool {
	return r.Status == StatusPending
}

// IsParkingAssignment returns true for reservations bound to a parking spot.
func (r *Reservation) IsParkingAssignment() bool {
	return r.Type == TypeParking
}

// ReservationPatch carries the fields of a partial update. Nil means
// "leave unchanged". Changing ResourceID, StartTime or EndTime forces a
// fresh conflict scan that excludes the reservation's own id.
type ReservationPatch struct {
	ResourceID  *int64
	Type        *ReservationType
	Status      *ReservationStatus
	StartTime   *time.Time
	EndTime     *time.Time
	Description *string
}

// TouchesSchedule reports whether the patch moves the reservation in time
// or onto another resource.
func (p *ReservationPatch) TouchesSchedule() bool {
	return p.ResourceID != nil || p.StartTime != nil || p.EndTime != nil
}

// Empty reports whether the patch changes nothing.
func (p *ReservationPatch) Empty() bool {
	return p.ResourceID == nil && p.Type == nil && p.Status == nil &&
		p.StartTime == nil && p.EndTime == nil && p.Description == nil
}

// OwnerReservationsFilter filters an owner's reservation history.
type OwnerReservationsFilter struct {
	OwnerID         int64
	Status          *ReservationStatus
	IncludeInactive bool
}
