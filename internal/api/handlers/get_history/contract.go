package get_history

import (
	"context"

	"github.com/detailhub/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetCustomerHistory(ctx context.Context, customerID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
