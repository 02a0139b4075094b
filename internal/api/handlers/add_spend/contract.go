package add_spend

import (
	"context"

	"github.com/detailhub/booking-service/internal/service/loyalty/models"
)

type LoyaltyService interface {
	AddSpend(ctx context.Context, customerID int64, req *models.AddSpendRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
