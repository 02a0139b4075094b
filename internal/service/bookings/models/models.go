package models

import (
	"errors"
	"time"

	"github.com/detailhub/booking-service/internal/domain"
)

var (
	// ErrInvalidStatus is returned for a status outside the known set.
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request models

// ListBookingsRequest filters the admin booking list.
type ListBookingsRequest struct {
	Date             *string `json:"date,omitempty"`   // YYYY-MM-DD
	Status           *string `json:"status,omitempty"` // pending/confirmed/cancelled
	IncludeCancelled bool    `json:"includeCancelled,omitempty"`
}

// ToDomainFilter converts the request into a storage filter.
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest changes a booking's status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response models

// BookingResponse carries a booking over the admin surface.
type BookingResponse struct {
	ID            int64  `json:"id"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone,omitempty"`

	ServiceID       *int64  `json:"serviceId,omitempty"`
	ServiceName     *string `json:"serviceName,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`

	BookingDate string `json:"bookingDate"` // "2025-10-15"
	TimeSlot    string `json:"timeSlot"`    // "10:00"
	Status      string `json:"status"`
	Notes       *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse wraps a list of bookings.
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking converts the domain model into a DTO.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		CustomerName:    b.CustomerName,
		CustomerEmail:   b.CustomerEmail,
		CustomerPhone:   b.CustomerPhone,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		DurationMinutes: b.DurationMinutes,
		BookingDate:     b.Date.Format(domain.DateFormat),
		TimeSlot:        b.TimeSlot.String(),
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList converts a list of domain models into DTOs.
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus converts a string into a validated domain status.
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ToBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
