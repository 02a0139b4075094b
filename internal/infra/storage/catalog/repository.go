package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/detailhub/booking-service/internal/domain"
	"github.com/detailhub/booking-service/pkg/dbmetrics"
	"github.com/detailhub/booking-service/pkg/psqlbuilder"
)

// Repository is the read-only access layer for the service/package catalog.
// Catalog writes belong to catalog management; this service only needs the
// pricing-relevant fields, and treats inactive entries as absent.
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

var serviceColumns = []string{
	"id",
	"name",
	"description",
	"base_price",
	"duration_minutes",
	"category",
	"vehicle_types",
	"requirements",
	"is_active",
	"created_at",
	"updated_at",
}

// GetServiceByID fetches an active service.
func (r *Repository) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// GetServicesByIDs fetches the active services among ids, in no particular
// order. Missing or inactive IDs are simply absent from the result.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("services").
		Where(squirrel.Eq{"id": ids, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0, len(ids))
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServicesByIDs - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetPackageByID fetches an active service package.
func (r *Repository) GetPackageByID(ctx context.Context, id int64) (*domain.ServicePackage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"base_price",
		"duration_minutes",
		"services",
		"discount_percentage",
		"is_popular",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("service_packages").
		Where(squirrel.Eq{"id": id, "is_active": true}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByID - build select query: %v", ErrBuildQuery, err)
	}

	var pkg domain.ServicePackage
	var serviceIDs []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&pkg.ID,
		&pkg.Name,
		&pkg.Description,
		&pkg.BasePrice,
		&pkg.DurationMinutes,
		&serviceIDs,
		&pkg.DiscountPercentage,
		&pkg.IsPopular,
		&pkg.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPackageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPackageByID - scan package: %v", ErrScanRow, err)
	}

	if err := unmarshalJSONColumn(serviceIDs, &pkg.ServiceIDs); err != nil {
		return nil, fmt.Errorf("%w: GetPackageByID - decode services: %v", ErrScanRow, err)
	}

	pkg.CreatedAt = createdAt.Time
	pkg.UpdatedAt = updatedAt.Time

	return &pkg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.Service, error) {
	var service domain.Service
	var vehicleTypes, requirements []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.Name,
		&service.Description,
		&service.BasePrice,
		&service.DurationMinutes,
		&service.Category,
		&vehicleTypes,
		&requirements,
		&service.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSONColumn(vehicleTypes, &service.VehicleTypes); err != nil {
		return nil, fmt.Errorf("decode vehicle_types: %w", err)
	}
	if err := unmarshalJSONColumn(requirements, &service.Requirements); err != nil {
		return nil, fmt.Errorf("decode requirements: %w", err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time

	return &service, nil
}

// unmarshalJSONColumn decodes a jsonb column, treating NULL as an empty list.
func unmarshalJSONColumn(raw []byte, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
