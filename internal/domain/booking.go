package domain

import (
	"time"

	"github.com/detailhub/booking-service/pkg/types"
)

// BookingStatus represents the status of an appointment
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidStatuses are the statuses an admin may set.
var ValidStatuses = []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled}

// Booking represents a detailing appointment. Only one live (non-cancelled)
// booking may exist per (date, time slot) pair; bookings are never deleted,
// only cancelled.
type Booking struct {
	ID            int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	// ServiceID references the catalog when the appointment was made for a
	// listed service; it is nil for walk-in or manual bookings. ServiceName
	// is a denormalized snapshot kept for history even if the catalog entry
	// is later renamed or deactivated.
	ServiceID       *int64
	ServiceName     *string
	DurationMinutes *int

	Date     time.Time
	TimeSlot types.TimeString
	Status   BookingStatus
	Notes    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLive returns true if the booking still occupies its slot.
func (b *Booking) IsLive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// ToBookingStatus validates an incoming status string.
func ToBookingStatus(s string) (BookingStatus, bool) {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// BookingsFilter narrows admin booking listings.
type BookingsFilter struct {
	Date             *time.Time     // exact calendar date, optional
	Status           *BookingStatus // optional
	IncludeCancelled bool           // when false and no status given, cancelled rows are excluded
}
