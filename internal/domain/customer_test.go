package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name   string
		points int
		spent  float64
		want   Tier
	}{
		{"zero", 0, 0, TierBronze},
		{"just below silver", 499, 249.99, TierBronze},
		{"silver by points", 500, 0, TierSilver},
		{"silver by spend", 0, 250, TierSilver},
		{"just below gold", 999, 499.99, TierSilver},
		{"gold by points", 1000, 0, TierGold},
		{"gold by spend", 0, 500, TierGold},
		{"gold by both", 5000, 2000, TierGold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.points, tt.spent))
		})
	}
}

func TestTierFor_Idempotent(t *testing.T) {
	first := TierFor(750, 300)
	second := TierFor(750, 300)
	assert.Equal(t, first, second)
}
