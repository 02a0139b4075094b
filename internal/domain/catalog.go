package domain

import "time"

// Service is a single detailing service from the catalog. Owned by catalog
// management; this service reads it only for pricing and booking snapshots.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	BasePrice       float64
	DurationMinutes int
	Category        string
	VehicleTypes    []string
	Requirements    []string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SupportsVehicleType reports whether the service is offered for the given
// vehicle type.
func (s *Service) SupportsVehicleType(vehicleType string) bool {
	for _, vt := range s.VehicleTypes {
		if vt == vehicleType {
			return true
		}
	}
	return false
}

// ServicePackage bundles several services at a discount.
type ServicePackage struct {
	ID                 int64
	Name               string
	Description        *string
	BasePrice          float64
	DurationMinutes    int
	ServiceIDs         []int64
	DiscountPercentage float64 // 0–100
	IsPopular          bool
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FinalPrice is the package price after discount, before any vehicle
// adjustment.
func (p *ServicePackage) FinalPrice() float64 {
	return Round2(p.BasePrice * (1 - p.DiscountPercentage/100))
}
