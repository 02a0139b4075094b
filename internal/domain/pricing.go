package domain

import "math"

// Vehicle types with dedicated price multipliers.
const (
	VehicleSedan = "sedan"
	VehicleSUV   = "suv"
	VehicleTruck = "truck"
)

// VehicleMultiplier returns the price multiplier for a vehicle type. Unknown
// types silently fall back to 1.0 rather than erroring; only single-service
// pricing additionally checks the service's supported set.
func VehicleMultiplier(vehicleType string) float64 {
	switch vehicleType {
	case VehicleSedan:
		return 1.0
	case VehicleSUV:
		return 1.3
	case VehicleTruck:
		return 1.5
	default:
		return 1.0
	}
}

// Round2 rounds to two decimal places, half away from zero. All user-facing
// monetary figures pass through this at the same points the quotes are
// assembled, so repeated computation yields identical cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
