package price_package

import (
	"context"

	"github.com/detailhub/booking-service/internal/domain"
)

// CatalogRepository is the slice of the catalog storage this use case needs.
type CatalogRepository interface {
	GetPackageByID(ctx context.Context, id int64) (*domain.ServicePackage, error)
	GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error)
}

// Logger interface for logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
