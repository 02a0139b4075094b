package recompute_tier

import (
	"context"

	"github.com/detailhub/booking-service/internal/service/loyalty/models"
)

type LoyaltyService interface {
	RecomputeTier(ctx context.Context, customerID int64) (*models.LoyaltyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
