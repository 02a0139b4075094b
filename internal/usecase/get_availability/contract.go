package get_availability

import (
	"context"
	"time"

	"github.com/detailhub/booking-service/internal/domain"
)

// BookingRepository is the slice of the bookings storage this use case needs.
type BookingRepository interface {
	GetLiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
