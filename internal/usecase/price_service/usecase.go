package price_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/detailhub/booking-service/internal/domain"
	catalogRepo "github.com/detailhub/booking-service/internal/infra/storage/catalog"
)

// UseCase quotes a single catalog service for a vehicle type. Unlike package
// pricing, a vehicle type the service does not support is a hard error here.
type UseCase struct {
	catalogRepo CatalogRepository
	logger      Logger
}

func NewUseCase(catalogRepo CatalogRepository, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PriceService: id=%d, vehicleType=%s", req.ServiceID, req.VehicleType)

	service, err := uc.catalogRepo.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("PriceService: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("PriceService: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if !service.SupportsVehicleType(req.VehicleType) {
		uc.logger.Warn("PriceService: service id=%d does not support %q", req.ServiceID, req.VehicleType)
		return nil, fmt.Errorf("%w: %s for service %s", ErrUnsupportedVehicleType, req.VehicleType, service.Name)
	}

	multiplier := domain.VehicleMultiplier(req.VehicleType)

	return &Response{
		ServiceID:   service.ID,
		ServiceName: service.Name,
		VehicleType: req.VehicleType,
		Multiplier:  multiplier,
		BasePrice:   service.BasePrice,
		FinalPrice:  domain.Round2(service.BasePrice * multiplier),
	}, nil
}
