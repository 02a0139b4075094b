package price_service

import (
	priceService "github.com/detailhub/booking-service/internal/usecase/price_service"
)

// PriceRequest HTTP request model
type PriceRequest struct {
	VehicleType string `json:"vehicleType"`
}

// PriceResponse HTTP response model
type PriceResponse struct {
	ServiceID   int64   `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	VehicleType string  `json:"vehicleType"`
	Multiplier  float64 `json:"multiplier"`
	BasePrice   float64 `json:"basePrice"`
	FinalPrice  float64 `json:"finalPrice"`
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *priceService.Response) *PriceResponse {
	return &PriceResponse{
		ServiceID:   resp.ServiceID,
		ServiceName: resp.ServiceName,
		VehicleType: resp.VehicleType,
		Multiplier:  resp.Multiplier,
		BasePrice:   resp.BasePrice,
		FinalPrice:  resp.FinalPrice,
	}
}
