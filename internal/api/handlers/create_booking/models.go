package create_booking

import (
	"time"

	createBooking "github.com/detailhub/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	ServiceID     *int64  `json:"serviceId,omitempty"`
	ServiceLabel  *string `json:"serviceLabel,omitempty"`
	Date          string  `json:"date"`     // "2025-10-15"
	TimeSlot      string  `json:"timeSlot"` // "10:00"
	Notes         *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
	ServiceID     *int64  `json:"serviceId,omitempty"`
	ServiceName   *string `json:"serviceName,omitempty"`
	Date          string  `json:"date"`
	TimeSlot      string  `json:"timeSlot"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		ServiceID:     r.ServiceID,
		ServiceLabel:  r.ServiceLabel,
		Date:          r.Date,
		TimeSlot:      r.TimeSlot,
		Notes:         r.Notes,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerEmail: resp.CustomerEmail,
		CustomerPhone: resp.CustomerPhone,
		ServiceID:     resp.ServiceID,
		ServiceName:   resp.ServiceName,
		Date:          resp.Date,
		TimeSlot:      resp.TimeSlot.String(),
		Status:        resp.Status,
		Notes:         resp.Notes,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
