package price_package

import (
	pricePackage "github.com/detailhub/booking-service/internal/usecase/price_package"
)

// PriceRequest HTTP request model
type PriceRequest struct {
	VehicleType string `json:"vehicleType"`
}

// PriceResponse HTTP response model
type PriceResponse struct {
	PackageID          int64   `json:"packageId"`
	PackageName        string  `json:"packageName"`
	VehicleType        string  `json:"vehicleType"`
	Multiplier         float64 `json:"multiplier"`
	BasePrice          float64 `json:"basePrice"`
	AdjustedBasePrice  float64 `json:"adjustedBasePrice"`
	DiscountPercentage float64 `json:"discountPercentage"`
	FinalPrice         float64 `json:"finalPrice"`
	Savings            float64 `json:"savings"`
	IndividualTotal    float64 `json:"individualTotal"`
	IndividualSavings  float64 `json:"individualSavings"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *pricePackage.Response) *PriceResponse {
	return &PriceResponse{
		PackageID:          resp.PackageID,
		PackageName:        resp.PackageName,
		VehicleType:        resp.VehicleType,
		Multiplier:         resp.Multiplier,
		BasePrice:          resp.BasePrice,
		AdjustedBasePrice:  resp.AdjustedBasePrice,
		DiscountPercentage: resp.DiscountPercentage,
		FinalPrice:         resp.FinalPrice,
		Savings:            resp.Savings,
		IndividualTotal:    resp.IndividualTotal,
		IndividualSavings:  resp.IndividualSavings,
	}
}
