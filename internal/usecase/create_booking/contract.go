package create_booking

import (
	"context"
	"time"

	"github.com/detailhub/booking-service/internal/domain"
)

// BookingRepository is the slice of the bookings storage this use case needs.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetLiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository resolves an optional service reference so the booking
// can snapshot the catalog name and duration.
type CatalogRepository interface {
	GetServiceByID(ctx context.Context, id int64) (*domain.Service, error)
}

// TransactionManager serializes the availability check against the insert.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
