package price_package

import (
	"context"
	"errors"
	"fmt"

	"github.com/detailhub/booking-service/internal/domain"
	catalogRepo "github.com/detailhub/booking-service/internal/infra/storage/catalog"
)

// UseCase quotes a service package for a vehicle type. Member services that
// do not support the vehicle type are skipped when summing the individual
// comparison total, they never fail the quote. That asymmetry with the
// single-service path is deliberate.
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
	uc.logger.Info("PricePackage: id=%d, vehicleType=%s", req.PackageID, req.VehicleType)

	pkg, err := uc.catalogRepo.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrPackageNotFound) {
			uc.logger.Warn("PricePackage: package id=%d not found", req.PackageID)
			return nil, ErrPackageNotFound
		}
		uc.logger.Error("PricePackage: failed to get package id=%d: %v", req.PackageID, err)
		return nil, fmt.Errorf("%w: failed to get package: %v", ErrInternal, err)
	}

	services, err := uc.catalogRepo.GetServicesByIDs(ctx, pkg.ServiceIDs)
	if err != nil {
		uc.logger.Error("PricePackage: failed to get member services: %v", err)
		return nil, fmt.Errorf("%w: failed to get member services: %v", ErrInternal, err)
	}

	multiplier := domain.VehicleMultiplier(req.VehicleType)
	adjusted := pkg.BasePrice * multiplier
	final := domain.Round2(adjusted * (1 - pkg.DiscountPercentage/100))

	var individualSum float64
	for _, s := range services {
		if s.SupportsVehicleType(req.VehicleType) {
			individualSum += s.BasePrice * multiplier
		}
	}
	individualTotal := domain.Round2(individualSum)

	return &Response{
		PackageID:          pkg.ID,
		PackageName:        pkg.Name,
		VehicleType:        req.VehicleType,
		Multiplier:         multiplier,
		BasePrice:          pkg.BasePrice,
		AdjustedBasePrice:  adjusted,
		DiscountPercentage: pkg.DiscountPercentage,
		FinalPrice:         final,
		Savings:            domain.Round2(adjusted - final),
		IndividualTotal:    individualTotal,
		IndividualSavings:  domain.Round2(individualTotal - final),
	}, nil
}
