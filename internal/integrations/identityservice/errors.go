package identityservice

import "errors"

var (
	// ErrIdentityNotFound is returned when the user id has no identity record.
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrInternal is returned on client-side failures.
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse is returned when the service answers with an
	// unexpected status or body.
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
