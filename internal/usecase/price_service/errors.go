package price_service

import "errors"

var (
	// ErrServiceNotFound is returned when the service does not exist or is inactive.
	ErrServiceNotFound = errors.New("price_service: service not found")

	// ErrUnsupportedVehicleType is returned when the service does not list
	// the requested vehicle type.
	ErrUnsupportedVehicleType = errors.New("price_service: vehicle type not supported")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("price_service: internal error")
)
