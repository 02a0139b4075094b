package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when no active service matches the ID.
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrPackageNotFound is returned when no active package matches the ID.
	ErrPackageNotFound = errors.New("catalog.repository: package not found")

	// ErrBuildQuery is returned when building the SQL query fails.
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails.
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails.
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
