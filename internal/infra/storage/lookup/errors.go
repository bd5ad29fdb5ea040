package lookup

import "errors"

var (
	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("lookup.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("lookup.repository: failed to execute query")
)
