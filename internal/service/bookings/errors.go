package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when the booking does not exist.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCustomerNotFound is returned when the customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCannotCancel is returned when the booking is already cancelled.
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrInvalidStatus is returned for a status outside pending/confirmed/cancelled.
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidInput is returned for malformed input.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("service: internal error")
)
