package create_reservation

import "errors"

var (
	// ErrInvalidInput is returned on malformed input (bad interval,
	// missing fields, kind mismatch).
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrUnknownOwner is returned when neither the owner id nor the
	// account id fallback resolves.
	ErrUnknownOwner = errors.New("create_reservation: owner not found")

	// ErrUnknownType is returned when the reservation type is not a
	// lookup row.
	ErrUnknownType = errors.New("create_reservation: unknown reservation type")

	// ErrUnknownStatus is returned when the reservation status is not a
	// lookup row.
	ErrUnknownStatus = errors.New("create_reservation: unknown reservation status")

	// ErrResourceNotFound is returned when the target resource does not exist.
	ErrResourceNotFound = errors.New("create_reservation: resource not found")

	// ErrResourceUnderMaintenance is returned when the resource accepts
	// no bookings.
	ErrResourceUnderMaintenance = errors.New("create_reservation: resource is under maintenance")

	// ErrTimeConflict is returned when the requested window overlaps an
	// active reservation on the same resource.
	ErrTimeConflict = errors.New("create_reservation: time window conflicts with an existing reservation")

	// ErrInternal is returned on persistence failures.
	ErrInternal = errors.New("create_reservation: internal error")
)
