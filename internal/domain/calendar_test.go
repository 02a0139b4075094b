package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/detailhub/booking-service/pkg/types"
)

func TestIsValidDateFormat(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{"valid date", "2025-10-15", true},
		{"syntactically valid, impossible date", "2024-13-40", true},
		{"missing zero padding", "2025-1-5", false},
		{"slashes", "2025/10/15", false},
		{"trailing garbage", "2025-10-15T00:00", false},
		{"empty", "", false},
		{"words", "tomorrow", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidDateFormat(tt.date))
		})
	}
}

func TestGenerateDailySlots_BusinessDay(t *testing.T) {
	// 2025-10-15 is a Wednesday.
	slots := GenerateDailySlots("2025-10-15")

	want := []types.TimeString{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}
	assert.Equal(t, want, slots)
}

func TestGenerateDailySlots_Saturday(t *testing.T) {
	// 2025-10-18 is a Saturday; the shop is open.
	slots := GenerateDailySlots("2025-10-18")
	assert.Len(t, slots, 9)
	assert.Equal(t, types.TimeString("09:00"), slots[0])
	assert.Equal(t, types.TimeString("17:00"), slots[len(slots)-1])
}

func TestGenerateDailySlots_SundayClosed(t *testing.T) {
	// 2025-10-19 is a Sunday.
	slots := GenerateDailySlots("2025-10-19")
	assert.Empty(t, slots)
}

func TestGenerateDailySlots_ImpossibleDate(t *testing.T) {
	// Passes the format gate but fails to parse, so no slots exist.
	assert.True(t, IsValidDateFormat("2024-13-40"))
	assert.Empty(t, GenerateDailySlots("2024-13-40"))
}

func TestGenerateDailySlots_Unparseable(t *testing.T) {
	assert.Empty(t, GenerateDailySlots("not-a-date"))
}

func TestGenerateDailySlots_NoCloseHourSlot(t *testing.T) {
	for _, slot := range GenerateDailySlots("2025-10-15") {
		assert.NotEqual(t, types.TimeString("18:00"), slot)
	}
}

func TestIsBookableSlot(t *testing.T) {
	assert.True(t, IsBookableSlot("2025-10-15", "09:00"))
	assert.True(t, IsBookableSlot("2025-10-15", "17:00"))

	assert.False(t, IsBookableSlot("2025-10-15", "08:00"))
	assert.False(t, IsBookableSlot("2025-10-15", "18:00"))
	assert.False(t, IsBookableSlot("2025-10-15", "09:30"))
	assert.False(t, IsBookableSlot("2025-10-19", "09:00")) // Sunday
	assert.False(t, IsBookableSlot("2024-13-40", "09:00"))
}
