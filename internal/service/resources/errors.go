package resources

import "errors"

var (
	// ErrResourceNotFound is returned when the resource does not exist.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on persistence failures.
	ErrInternal = errors.New("resources service: internal error")
)
