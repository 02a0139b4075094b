package price_package

import (
	"context"

	pricePackage "github.com/detailhub/booking-service/internal/usecase/price_package"
)

type PricePackageUseCase interface {
	Execute(ctx context.Context, req *pricePackage.Request) (*pricePackage.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
