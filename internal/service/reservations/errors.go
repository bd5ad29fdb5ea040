package reservations

import "errors"

var (
	// ErrReservationNotFound is returned when the reservation does not exist.
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrAccessDenied is returned when the caller may not act on the
	// reservation's owner.
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel is returned when the reservation is past the
	// cancellable states.
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on persistence failures.
	ErrInternal = errors.New("reservations service: internal error")
)
