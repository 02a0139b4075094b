package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVehicleMultiplier(t *testing.T) {
	tests := []struct {
		vehicleType string
		want        float64
	}{
		{VehicleSedan, 1.0},
		{VehicleSUV, 1.3},
		{VehicleTruck, 1.5},
		{"motorcycle", 1.0}, // silent fallback
		{"", 1.0},
		{"SUV", 1.0}, // case sensitive, falls back
	}

	for _, tt := range tests {
		t.Run(tt.vehicleType, func(t *testing.T) {
			assert.Equal(t, tt.want, VehicleMultiplier(tt.vehicleType))
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 32.50, 32.50},
		{"round up", 10.016, 10.02},
		{"round down", 10.014, 10.01},
		{"negative", -10.016, -10.02},
		{"package discount product", 120 * 0.85, 102.00},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Round2(tt.in), 1e-9)
		})
	}
}

func TestPricingDeterminism(t *testing.T) {
	// 25.00 × 1.3 is exactly representable.
	assert.Equal(t, 32.50, Round2(25.00*VehicleMultiplier(VehicleSUV)))

	// Unknown vehicle types fall back to 1.0.
	assert.Equal(t, 10.00, Round2(10.00*VehicleMultiplier("unknown")))
}
