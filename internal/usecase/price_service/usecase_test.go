package price_service

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
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

func washService() *domain.Service {
	return &domain.Service{
		ID:           3,
		Name:         "Premium Wash",
		BasePrice:    25.00,
		VehicleTypes: []string{domain.VehicleSedan, domain.VehicleSUV},
		IsActive:     true,
	}
}

func TestExecute_SUVMultiplier(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{service: washService()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 3, VehicleType: domain.VehicleSUV})
	require.NoError(t, err)

	assert.Equal(t, 25.00, resp.BasePrice)
	assert.Equal(t, 1.3, resp.Multiplier)
	assert.Equal(t, 32.50, resp.FinalPrice)
	assert.Equal(t, "Premium Wash", resp.ServiceName)
}

func TestExecute_SedanKeepsBasePrice(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{service: washService()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 3, VehicleType: domain.VehicleSedan})
	require.NoError(t, err)

	assert.Equal(t, 25.00, resp.FinalPrice)
}

func TestExecute_UnsupportedVehicleType(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{service: washService()}, nopLogger{})

	// The service does not list trucks; single-service pricing rejects.
	_, err := uc.Execute(context.Background(), &Request{ServiceID: 3, VehicleType: domain.VehicleTruck})
	assert.ErrorIs(t, err, ErrUnsupportedVehicleType)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 99, VehicleType: domain.VehicleSedan})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_StorageError(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 3, VehicleType: domain.VehicleSedan})
	assert.ErrorIs(t, err, ErrInternal)
}
