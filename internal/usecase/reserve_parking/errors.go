package reserve_parking

import "errors"

var (
	// ErrInvalidInput is returned on malformed input.
	ErrInvalidInput = errors.New("reserve_parking: invalid input data")

	// ErrSpotNotFound is returned when the parking spot does not exist.
	ErrSpotNotFound = errors.New("reserve_parking: parking spot not found")

	// ErrNotAParkingSpot is returned when the resource is not a parking spot.
	ErrNotAParkingSpot = errors.New("reserve_parking: resource is not a parking spot")

	// ErrUnknownUser is returned when the assignee cannot be resolved.
	ErrUnknownUser = errors.New("reserve_parking: user not found")

	// ErrUnknownVehicleType is returned when the vehicle type is not a
	// lookup row.
	ErrUnknownVehicleType = errors.New("reserve_parking: unknown vehicle type")

	// ErrSpotNotAvailable is returned when the initial read finds the
	// spot in any status other than AVAILABLE.
	ErrSpotNotAvailable = errors.New("reserve_parking: spot is not available")

	// ErrSpotClaimLost is returned when the conditional update affects
	// zero rows: a concurrent request claimed the spot between our read
	// and our write.
	ErrSpotClaimLost = errors.New("reserve_parking: spot is no longer available")

	// ErrInternal is returned on persistence failures.
	ErrInternal = errors.New("reserve_parking: internal error")
)
