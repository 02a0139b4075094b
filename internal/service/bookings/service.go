package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/detailhub/booking-service/internal/domain"
	bookingRepo "github.com/detailhub/booking-service/internal/infra/storage/booking"
	customerRepo "github.com/detailhub/booking-service/internal/infra/storage/customer"
	"github.com/detailhub/booking-service/internal/service/bookings/models"
)

// Service covers the admin side of bookings: lookups, filtered listing,
// status transitions and the customer's service history. Creation stays in
// the create_booking use case, which owns the slot-conflict invariant.
type Service struct {
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	logger       Logger
}

// NewService creates a bookings service instance.
func NewService(
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetByID fetches one booking.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List fetches bookings with optional date and status filters. Cancelled
// bookings are hidden unless the filter asks for them.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, date=%v, status=%v, includeCancelled=%v",
		req.Date, req.Status, req.IncludeCancelled)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus moves a booking between pending, confirmed and cancelled.
// Cancelling an already cancelled booking is rejected; bookings are never
// deleted, cancellation is the terminal state.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return nil, ErrInvalidStatus
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if newStatus == domain.StatusCancelled && !booking.CanBeCancelled() {
		s.logger.Warn("UpdateStatus: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: updated booking id=%d to status=%s", bookingID, newStatus)

	booking.Status = newStatus
	return models.FromDomainBooking(booking), nil
}

// GetCustomerHistory lists the bookings made under the customer's email,
// newest first. The email on file is the join key since walk-in bookings
// carry no customer id.
func (s *Service) GetCustomerHistory(ctx context.Context, customerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerHistory: fetching history for customer=%d", customerID)

	email, err := s.customerRepo.GetEmailByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, customerRepo.ErrCustomerNotFound) {
			s.logger.Warn("GetCustomerHistory: customer id=%d not found", customerID)
			return nil, ErrCustomerNotFound
		}
		s.logger.Error("GetCustomerHistory: failed to resolve customer id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerHistory - failed to resolve customer: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByCustomerEmail(ctx, email)
	if err != nil {
		s.logger.Error("GetCustomerHistory: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerHistory - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerHistory: fetched %d bookings for customer=%d", len(bookings), customerID)
	return models.FromDomainBookingList(bookings), nil
}
