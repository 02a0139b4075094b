package create_booking

import (
	"fmt"

	"github.com/detailhub/booking-service/internal/domain"
)

// validateRequest enforces the reservation input contract. The checks run in
// a fixed order so callers get stable error kinds: required fields, then
// date format, then slot membership. Email is a presence check only at this
// layer.
func validateRequest(req *Request) error {
	if req.CustomerName == "" || req.CustomerEmail == "" || req.Date == "" || req.TimeSlot == "" {
		return fmt.Errorf("%w: name, email, date and timeSlot are required", ErrMissingFields)
	}

	if !domain.IsValidDateFormat(req.Date) {
		return ErrInvalidDate
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
