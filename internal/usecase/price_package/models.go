package price_package

// Request identifies the package and the customer's vehicle type.
type Request struct {
	PackageID   int64
	VehicleType string
}

// Response is an ephemeral package quote. Savings is measured against the
// vehicle-adjusted package price; IndividualSavings against buying the
// member services one by one.
type Response struct {
	PackageID          int64
	PackageName        string
	VehicleType        string
	Multiplier         float64
	BasePrice          float64
	AdjustedBasePrice  float64
	DiscountPercentage float64
	FinalPrice         float64
	Savings            float64
	IndividualTotal    float64
	IndividualSavings  float64
}
