package bookings

import (
	"context"

	"github.com/detailhub/booking-service/internal/domain"
)

// BookingRepository is the slice of the bookings storage this service needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// CustomerRepository resolves a customer id to the email the booking rows
// carry, for the service-history view.
type CustomerRepository interface {
	GetEmailByID(ctx context.Context, customerID int64) (string, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
