package create_booking

import (
	"time"

	"github.com/detailhub/booking-service/pkg/types"
)

// Request carries a reservation attempt. ServiceID optionally references the
// catalog; ServiceLabel covers walk-in bookings for services not listed in
// it. When both are given the catalog name wins.
type Request struct {
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	ServiceID     *int64
	ServiceLabel  *string
	Date          string // YYYY-MM-DD
	TimeSlot      string // HH:MM, on the hour
	Notes         *string
}

// Response echoes the created booking.
type Response struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	ServiceID     *int64
	ServiceName   *string
	Date          string
	TimeSlot      types.TimeString
	Status        string
	Notes         *string
	CreatedAt     time.Time
}
