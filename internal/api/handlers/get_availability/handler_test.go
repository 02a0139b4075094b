package get_availability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/detailhub/booking-service/internal/usecase/get_availability"
	"github.com/detailhub/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *getAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailability.Request) (*getAvailability.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getAvailability.ErrInvalidDate}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=15-10-2025", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_OpenDay(t *testing.T) {
	h := NewHandler(&fakeUseCase{
		resp: &getAvailability.Response{
			Date:   "2025-10-15",
			Closed: false,
			Slots:  []types.TimeString{"09:00", "11:00"},
		},
	}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2025-10-15", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2025-10-15", body.Date)
	assert.False(t, body.Closed)
	assert.Equal(t, []string{"09:00", "11:00"}, body.Slots)
}

func TestHandle_ClosedDay(t *testing.T) {
	h := NewHandler(&fakeUseCase{
		resp: &getAvailability.Response{Date: "2025-10-19", Closed: true, Slots: []types.TimeString{}},
	}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2025-10-19", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Closed)
	assert.Empty(t, body.Slots)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: errors.New("boom")}, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2025-10-15", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
