package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailhub/booking-service/internal/domain"
	"github.com/detailhub/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error

	gotDate time.Time
}

func (f *fakeBookingRepo) GetLiveByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	f.gotDate = date
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func bookingAt(slot types.TimeString) *domain.Booking {
	return &domain.Booking{TimeSlot: slot, Status: domain.StatusPending}
}

func TestExecute_InvalidDateFormat(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "15-10-2025"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ClosedSunday(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, nopLogger{})

	// 2025-10-19 is a Sunday; storage must not be touched.
	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-19"})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
	assert.True(t, repo.gotDate.IsZero())
}

func TestExecute_ImpossibleDateReportsClosed(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	// Passes the format gate, fails slot generation.
	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-13-40"})
	require.NoError(t, err)

	assert.True(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_AllSlotsOpen(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Len(t, resp.Slots, 9)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0])
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[8])
}

func TestExecute_SubtractsBookedSlots(t *testing.T) {
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{bookingAt("10:00"), bookingAt("14:00")},
	}
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)

	assert.False(t, resp.Closed)
	assert.Len(t, resp.Slots, 7)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))
	assert.NotContains(t, resp.Slots, types.TimeString("14:00"))

	// Remaining slots keep ascending order.
	for i := 1; i < len(resp.Slots); i++ {
		assert.True(t, resp.Slots[i-1].IsBefore(resp.Slots[i]))
	}

	assert.Equal(t, "2025-10-15", repo.gotDate.Format(domain.DateFormat))
}

func TestExecute_FullyBookedIsNotClosed(t *testing.T) {
	all := domain.GenerateDailySlots("2025-10-15")
	booked := make([]*domain.Booking, 0, len(all))
	for _, slot := range all {
		booked = append(booked, bookingAt(slot))
	}

	uc := NewUseCase(&fakeBookingRepo{bookings: booked}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	require.NoError(t, err)

	// Fully booked and closed are different answers.
	assert.False(t, resp.Closed)
	assert.Empty(t, resp.Slots)
}

func TestExecute_StorageError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-10-15"})
	assert.ErrorIs(t, err, ErrInternal)
}
