package price_service

// Request identifies the service and the customer's vehicle type.
type Request struct {
	ServiceID   int64
	VehicleType string
}

// Response is an ephemeral quote. Nothing is persisted.
type Response struct {
	ServiceID   int64
	ServiceName string
	VehicleType string
	Multiplier  float64
	BasePrice   float64
	FinalPrice  float64
}
