package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/detailhub/booking-service/internal/domain"
	bookingRepo "github.com/detailhub/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/detailhub/booking-service/internal/infra/storage/catalog"
	"github.com/detailhub/booking-service/pkg/ptr"
	"github.com/detailhub/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeBookingRepo keeps live bookings in memory. Safe only when calls are
// serialized, which is exactly what the fake transaction manager provides.
type fakeBookingRepo struct {
	bookings  []*domain.Booking
	nextID    int64
	createErr error
}

func (f *fakeBookingRepo) GetLiveByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range f.bookings {
		if b.Date.Equal(date) && b.IsLive() {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	f.nextID++
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

type fakeCatalogRepo struct {
	service *domain.Service
	err     error
}

func (f *fakeCatalogRepo) GetServiceByID(_ context.Context, _ int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

// fakeTxManager serializes transactional sections with a mutex, standing in
// for the SERIALIZABLE isolation the real manager requests.
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

func validRequest() *Request {
	return &Request{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		Date:          "2025-10-15", // Wednesday
		TimeSlot:      "10:00",
	}
}

func newTestUseCase(repo *fakeBookingRepo, catalog *fakeCatalogRepo) *UseCase {
	return NewUseCase(repo, catalog, &fakeTxManager{}, nopLogger{})
}

func TestExecute_MissingFieldsBeforeDateCheck(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	// Both name and date are bad; the missing-field error wins.
	req := validRequest()
	req.CustomerName = ""
	req.Date = "bad-date"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestExecute_MissingEmail(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	req := validRequest()
	req.CustomerEmail = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestExecute_InvalidDateBeforeSlotCheck(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	// The slot is bad too, but the date format error comes first.
	req := validRequest()
	req.Date = "15/10/2025"
	req.TimeSlot = "08:00"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ImpossibleDateRejectsSlot(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	// "2024-13-40" passes the format gate; every slot is then invalid.
	req := validRequest()
	req.Date = "2024-13-40"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_SlotOutsideBusinessHours(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	for _, slot := range []string{"08:00", "18:00", "09:30", "23:00"} {
		req := validRequest()
		req.TimeSlot = slot

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "slot %s", slot)
	}
}

func TestExecute_SundayRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	req := validRequest()
	req.Date = "2025-10-19"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_NotesTooLong(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'x'
	}

	req := validRequest()
	req.Notes = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CreatesPendingBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogRepo{})

	req := validRequest()
	req.ServiceLabel = ptr.Ptr("Hand Wash")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "2025-10-15", resp.Date)
	assert.Equal(t, types.TimeString("10:00"), resp.TimeSlot)
	require.NotNil(t, resp.ServiceName)
	assert.Equal(t, "Hand Wash", *resp.ServiceName)
	assert.Nil(t, resp.ServiceID)
}

func TestExecute_SnapshotsCatalogService(t *testing.T) {
	repo := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{
		service: &domain.Service{
			ID:              7,
			Name:            "Full Detail",
			BasePrice:       150,
			DurationMinutes: 120,
		},
	}
	uc := newTestUseCase(repo, catalog)

	req := validRequest()
	req.ServiceID = ptr.Ptr(int64(7))
	req.ServiceLabel = ptr.Ptr("stale label")

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// The catalog name wins over the caller's label.
	require.NotNil(t, resp.ServiceName)
	assert.Equal(t, "Full Detail", *resp.ServiceName)
	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, int64(7), *resp.ServiceID)

	require.Len(t, repo.bookings, 1)
	require.NotNil(t, repo.bookings[0].DurationMinutes)
	assert.Equal(t, 120, *repo.bookings[0].DurationMinutes)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{err: catalogRepo.ErrServiceNotFound})

	req := validRequest()
	req.ServiceID = ptr.Ptr(int64(99))

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

	assert.Len(t, repo.bookings, 1)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	repo.bookings[0].Status = domain.StatusCancelled

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_UniqueIndexViolationMapsToConflict(t *testing.T) {
	repo := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotAlreadyBooked)
}

func TestExecute_StorageErrorIsInternal(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection reset")}
	uc := newTestUseCase(repo, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_ConcurrentSameSlot(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogRepo{})

	const attempts = 8

	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	var won, conflicted int
	for _, err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrSlotAlreadyBooked):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, repo.bookings, 1)
}
