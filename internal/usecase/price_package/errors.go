package price_package

import "errors"

var (
	// ErrPackageNotFound is returned when the package does not exist or is inactive.
	ErrPackageNotFound = errors.New("price_package: package not found")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("price_package: internal error")
)
