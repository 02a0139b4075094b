package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/detailhub/booking-service/internal/domain"
	"github.com/detailhub/booking-service/pkg/types"
)

// UseCase computes the open slots for a date: the calendar's full slot list
// minus the slots held by live bookings. Read-only; the result is a snapshot
// and may be stale by the time a client reserves — the reservation use case
// re-validates under a transaction.
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date)

	if !domain.IsValidDateFormat(req.Date) {
		uc.logger.Warn("GetAvailability: invalid date format: %q", req.Date)
		return nil, ErrInvalidDate
	}

	allSlots := domain.GenerateDailySlots(req.Date)
	if len(allSlots) == 0 {
		uc.logger.Info("GetAvailability: closed on %s", req.Date)
		return &Response{
			Date:   req.Date,
			Closed: true,
			Slots:  []types.TimeString{},
		}, nil
	}

	// A non-empty slot list implies the date parsed during generation.
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: parse date: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetLiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	occupied := make(map[types.TimeString]struct{}, len(bookings))
	for _, b := range bookings {
		occupied[b.TimeSlot] = struct{}{}
	}

	available := make([]types.TimeString, 0, len(allSlots))
	for _, slot := range allSlots {
		if _, taken := occupied[slot]; !taken {
			available = append(available, slot)
		}
	}

	uc.logger.Info("GetAvailability: %d of %d slots open on %s", len(available), len(allSlots), req.Date)

	return &Response{
		Date:   req.Date,
		Closed: false,
		Slots:  available,
	}, nil
}
