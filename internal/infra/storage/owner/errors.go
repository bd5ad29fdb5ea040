package owner

import "errors"

var (
	// ErrOwnerNotFound is returned when neither the owner id nor the
	// account id fallback resolves to an owner row.
	ErrOwnerNotFound = errors.New("owner.repository: owner not found")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("owner.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("owner.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("owner.repository: failed to scan row")
)
