package get_availability

import "github.com/detailhub/booking-service/pkg/types"

// Request asks for the open slots on one calendar date.
type Request struct {
	Date string // YYYY-MM-DD
}

// Response lists the remaining open slots. Closed distinguishes "the shop
// does not open that day" from "every slot is taken": both yield an empty
// slot list.
type Response struct {
	Date   string
	Closed bool
	Slots  []types.TimeString
}
