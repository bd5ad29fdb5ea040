package resource

import "errors"

var (
	// ErrResourceNotFound is returned when no resource row matches.
	ErrResourceNotFound = errors.New("resource.repository: resource not found")

	// ErrClaimLost is returned when a conditional status update affects
	// zero rows: a concurrent claimer got the spot first.
	ErrClaimLost = errors.New("resource.repository: conditional update lost, resource no longer in expected status")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("resource.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("resource.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("resource.repository: failed to scan row")
)
