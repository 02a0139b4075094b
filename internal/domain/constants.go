package domain

import "time"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Shop schedule. Fixed business configuration: appointments are taken Monday
// through Saturday, 09:00 to 18:00 (last bookable slot starts at 17:00), in
// one-hour buckets.
const (
	OpenHour    = 9
	CloseHour   = 18 // exclusive
	SlotMinutes = 60
)

// BusinessDays are the weekdays with a non-empty slot list. Sunday is closed.
var BusinessDays = map[time.Weekday]bool{
	time.Monday:    true,
	time.Tuesday:   true,
	time.Wednesday: true,
	time.Thursday:  true,
	time.Friday:    true,
	time.Saturday:  true,
}

// Business validation constants
const (
	MaxNotesLength = 500
)

// Loyalty tier thresholds. A tier is reached by points OR lifetime spend.
const (
	GoldPointsThreshold   = 1000
	GoldSpendThreshold    = 500.0
	SilverPointsThreshold = 500
	SilverSpendThreshold  = 250.0
)
