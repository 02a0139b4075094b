package get_availability

import "errors"

var (
	// ErrInvalidDate is returned when the date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("get_availability: invalid date")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_availability: internal error")
)
