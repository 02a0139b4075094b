package price_service

import (
	"context"

	priceService "github.com/detailhub/booking-service/internal/usecase/price_service"
)

type PriceServiceUseCase interface {
	Execute(ctx context.Context, req *priceService.Request) (*priceService.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
