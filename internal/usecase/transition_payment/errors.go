package transition_payment

import "errors"

var (
	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("transition_payment: invalid input data")

	// ErrPaymentNotFound is returned when the payment does not exist.
	ErrPaymentNotFound = errors.New("transition_payment: payment not found")

	// ErrUnknownStatus is returned when the target status is not a
	// lookup row.
	ErrUnknownStatus = errors.New("transition_payment: unknown payment status")

	// ErrInvalidTransition is returned when the (current, target) pair is
	// not in the transition table. Terminal statuses never transition.
	ErrInvalidTransition = errors.New("transition_payment: status transition not permitted")

	// ErrInternal is returned on persistence failures.
	ErrInternal = errors.New("transition_payment: internal error")
)
