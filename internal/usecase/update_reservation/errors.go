package update_reservation

import "errors"

var (
	// ErrInvalidInput is returned on malformed input (empty patch, bad
	// interval, unknown fields).
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrResourceNotFound is returned when the patch points at a
	// non-existent resource.
	ErrResourceNotFound = errors.New("update_reservation: resource not found")

	// ErrResourceUnderMaintenance is returned when the target resource
	// accepts no bookings.
	ErrResourceUnderMaintenance = errors.New("update_reservation: resource is under maintenance")

	// ErrUnknownType is returned when the patched type is not a lookup row.
	ErrUnknownType = errors.New("update_reservation: unknown reservation type")

	// ErrUnknownStatus is returned when the patched status is not a lookup row.
	ErrUnknownStatus = errors.New("update_reservation: unknown reservation status")

	// ErrTimeConflict is returned when the re-run conflict scan finds an
	// overlap with another reservation.
	ErrTimeConflict = errors.New("update_reservation: time window conflicts with an existing reservation")

	// ErrInternal is returned on persistence failures.
	ErrInternal = errors.New("update_reservation: internal error")
)
