package get_loyalty

import (
	"context"

	"github.com/detailhub/booking-service/internal/service/loyalty/models"
)

type LoyaltyService interface {
	GetLoyalty(ctx context.Context, customerID int64) (*models.LoyaltyResponse, error)
	GetTransactions(ctx context.Context, customerID int64) (*models.TransactionListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
