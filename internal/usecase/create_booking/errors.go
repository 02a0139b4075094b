package create_booking

import "errors"

var (
	// ErrMissingFields is returned when name, email, date or timeSlot is absent.
	ErrMissingFields = errors.New("create_booking: missing required fields")

	// ErrInvalidDate is returned when the date is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrInvalidTimeSlot is returned when the slot is not in the date's
	// generated slot list (closed day or outside business hours).
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotAlreadyBooked is returned when a live booking already occupies
	// the requested date and slot.
	ErrSlotAlreadyBooked = errors.New("create_booking: slot already booked")

	// ErrServiceNotFound is returned when the referenced catalog service
	// does not exist or is inactive.
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrInvalidInput is returned for other malformed input.
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("create_booking: internal error")
)
