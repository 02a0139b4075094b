package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/detailhub/booking-service/pkg/types"
)

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDateFormat reports whether s looks like YYYY-MM-DD. This is a
// syntactic gate only: "2024-13-40" passes. Callers rely on slot generation
// (which parses the date) to reject impossible dates, so tightening this
// check would change the API's observable behavior.
func IsValidDateFormat(s string) bool {
	return isoDatePattern.MatchString(s)
}

// GenerateDailySlots returns every bookable slot start for the given date,
// in ascending order. The list is empty when the shop is closed that day or
// when the date does not parse as a real calendar date.
func GenerateDailySlots(dateStr string) []types.TimeString {
	date, err := time.Parse(DateFormat, dateStr)
	if err != nil {
		return []types.TimeString{}
	}

	if !BusinessDays[date.Weekday()] {
		return []types.TimeString{}
	}

	slots := make([]types.TimeString, 0, CloseHour-OpenHour)
	for hour := OpenHour; hour < CloseHour; hour += SlotMinutes / 60 {
		slots = append(slots, types.TimeString(fmt.Sprintf("%02d:00", hour)))
	}
	return slots
}

// IsBookableSlot reports whether timeSlot is a member of the date's
// generated slot list.
func IsBookableSlot(dateStr string, timeSlot types.TimeString) bool {
	for _, slot := range GenerateDailySlots(dateStr) {
		if slot == timeSlot {
			return true
		}
	}
	return false
}
