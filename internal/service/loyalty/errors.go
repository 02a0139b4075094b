package loyalty

import "errors"

var (
	// ErrCustomerNotFound is returned when the customer does not exist.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvalidInput is returned for zero point deltas, empty transaction
	// types and non-positive spend amounts.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("loyalty: internal error")
)
