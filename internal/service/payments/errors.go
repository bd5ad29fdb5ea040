package payments

import "errors"

var (
	// ErrPaymentNotFound is returned when the payment does not exist.
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAccessDenied is returned when the caller may not see the payment.
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal is returned on persistence failures.
	ErrInternal = errors.New("payments service: internal error")
)
