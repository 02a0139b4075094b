package price_package

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailhub/booking-service/internal/domain"
	catalogRepo "github.com/detailhub/booking-service/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalogRepo struct {
	pkg      *domain.ServicePackage
	services []*domain.Service

	pkgErr      error
	servicesErr error
}

func (f *fakeCatalogRepo) GetPackageByID(_ context.Context, _ int64) (*domain.ServicePackage, error) {
	if f.pkgErr != nil {
		return nil, f.pkgErr
	}
	return f.pkg, nil
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, _ []int64) ([]*domain.Service, error) {
	if f.servicesErr != nil {
		return nil, f.servicesErr
	}
	return f.services, nil
}

func fullDetailPackage() *domain.ServicePackage {
	return &domain.ServicePackage{
		ID:                 1,
		Name:               "Full Detail Bundle",
		BasePrice:          120.00,
		ServiceIDs:         []int64{1, 2},
		DiscountPercentage: 15,
		IsActive:           true,
	}
}

func memberServices() []*domain.Service {
	return []*domain.Service{
		{ID: 1, Name: "Exterior Wash", BasePrice: 50, VehicleTypes: []string{domain.VehicleSedan, domain.VehicleSUV}},
		{ID: 2, Name: "Interior Detail", BasePrice: 90, VehicleTypes: []string{domain.VehicleSedan}},
	}
}

func TestExecute_SedanDiscount(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{pkg: fullDetailPackage(), services: memberServices()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PackageID: 1, VehicleType: domain.VehicleSedan})
	require.NoError(t, err)

	assert.Equal(t, 120.00, resp.BasePrice)
	assert.Equal(t, 120.00, resp.AdjustedBasePrice)
	assert.Equal(t, 15.0, resp.DiscountPercentage)
	assert.Equal(t, 102.00, resp.FinalPrice)
	assert.Equal(t, 18.00, resp.Savings)

	// Both members support sedans: 50 + 90.
	assert.Equal(t, 140.00, resp.IndividualTotal)
	assert.Equal(t, 38.00, resp.IndividualSavings)
}

func TestExecute_SkipsUnsupportedMembers(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{pkg: fullDetailPackage(), services: memberServices()}, nopLogger{})

	// Interior Detail does not support SUVs; it contributes zero instead of
	// failing the quote.
	resp, err := uc.Execute(context.Background(), &Request{PackageID: 1, VehicleType: domain.VehicleSUV})
	require.NoError(t, err)

	assert.InDelta(t, 156.00, resp.AdjustedBasePrice, 1e-9) // 120 × 1.3
	assert.InDelta(t, 132.60, resp.FinalPrice, 1e-9)        // 156 × 0.85
	assert.InDelta(t, 65.00, resp.IndividualTotal, 1e-9)    // 50 × 1.3 only
}

func TestExecute_UnknownVehicleFallsBack(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{pkg: fullDetailPackage(), services: memberServices()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PackageID: 1, VehicleType: "hovercraft"})
	require.NoError(t, err)

	assert.Equal(t, 1.0, resp.Multiplier)
	assert.Equal(t, 102.00, resp.FinalPrice)
	// Neither member lists "hovercraft", so the comparison total is zero.
	assert.Equal(t, 0.00, resp.IndividualTotal)
}

func TestExecute_PackageNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{pkgErr: catalogRepo.ErrPackageNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PackageID: 404, VehicleType: domain.VehicleSedan})
	assert.ErrorIs(t, err, ErrPackageNotFound)
}

func TestExecute_MemberLookupFailure(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{pkg: fullDetailPackage(), servicesErr: errors.New("timeout")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PackageID: 1, VehicleType: domain.VehicleSedan})
	assert.ErrorIs(t, err, ErrInternal)
}
