package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/detailhub/booking-service/internal/domain"
	bookingRepo "github.com/detailhub/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/detailhub/booking-service/internal/infra/storage/catalog"
	"github.com/detailhub/booking-service/pkg/ptr"
	"github.com/detailhub/booking-service/pkg/types"
)

// UseCase creates appointments. It is the only writer of new bookings and
// owns the no-double-booking invariant: the availability check and the
// insert run inside one serializable transaction with the date's live rows
// locked, and the storage layer's partial unique index backstops the check
// should two writers still race.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, slot=%s", req.CustomerEmail, req.Date, req.TimeSlot)

	// 1. Input contract: required fields, date format, notes length.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Slot must be a member of the date's generated slot list. An empty
	// list (closed day, or a date like 2024-13-40 that passed the format
	// gate) rejects every slot.
	timeSlot := types.TimeString(req.TimeSlot)
	if !domain.IsBookableSlot(req.Date, timeSlot) {
		uc.logger.Warn("CreateBooking: slot %s not bookable on %s", req.TimeSlot, req.Date)
		return nil, ErrInvalidTimeSlot
	}

	// The slot check guarantees the date parses.
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: parse date: %v", ErrInternal, err)
	}

	// 3. Resolve the optional catalog reference and snapshot its name and
	// duration, so history survives catalog renames.
	serviceName := req.ServiceLabel
	var durationMinutes *int
	if req.ServiceID != nil {
		service, err := uc.catalogRepo.GetServiceByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrServiceNotFound) {
				uc.logger.Warn("CreateBooking: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		serviceName = ptr.Ptr(service.Name)
		durationMinutes = ptr.Ptr(service.DurationMinutes)
	}

	var result *domain.Booking

	// 4. Check-then-insert under a serializable transaction.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetLiveByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		for _, b := range existing {
			if b.TimeSlot == timeSlot {
				uc.logger.Warn("CreateBooking: slot %s on %s already booked (id=%d)", req.TimeSlot, req.Date, b.ID)
				return ErrSlotAlreadyBooked
			}
		}

		booking := &domain.Booking{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ServiceID:       req.ServiceID,
			ServiceName:     serviceName,
			DurationMinutes: durationMinutes,
			Date:            date,
			TimeSlot:        timeSlot,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// The unique index caught a race the lock did not cover.
				return ErrSlotAlreadyBooked
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: created booking id=%d for %s %s", result.ID, req.Date, req.TimeSlot)

	return &Response{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		CustomerEmail: result.CustomerEmail,
		CustomerPhone: result.CustomerPhone,
		ServiceID:     result.ServiceID,
		ServiceName:   result.ServiceName,
		Date:          result.Date.Format(domain.DateFormat),
		TimeSlot:      result.TimeSlot,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
	}, nil
}
