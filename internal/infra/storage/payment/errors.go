package payment

import "errors"

var (
	// ErrPaymentNotFound is returned when no payment row matches.
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrBuildQuery is returned when a SQL statement cannot be built.
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery is returned when a SQL statement fails to execute.
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
