package reservation

import "errors"

var (
	// ErrReservationNotFound is returned when no reservation row matches.
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
