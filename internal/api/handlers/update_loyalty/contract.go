package update_loyalty

import (
	"context"

	"github.com/detailhub/booking-service/internal/service/loyalty/models"
)

type LoyaltyService interface {
	AppendTransaction(ctx context.Context, customerID int64, req *models.AppendTransactionRequest) (*models.TransactionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
