package check_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type fakeUseCase struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/availability", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Busy(t *testing.T) {
	uc := &fakeUseCase{}
	uc.resp = &checkAvailability.Response{RoomID: 3, StartTime: "09:30", DurationMinutes: 60, ConflictingCount: 2}

	rec := serve(uc, "/api/v1/rooms/3/availability?date=2026-10-20&startTime=09:30&durationMinutes=60")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Available)
	assert.Equal(t, 2, body.ConflictingCount)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(3), uc.got.RoomID)
	assert.Equal(t, "2026-10-20", uc.got.Date.Format("2006-01-02"))
	assert.Equal(t, "09:30", uc.got.StartTime.String())
	assert.Equal(t, 60, uc.got.DurationMinutes)
}

func TestHandler_BadParams(t *testing.T) {
	targets := []string{
		"/api/v1/rooms/abc/availability?date=2026-10-20&startTime=09:30&durationMinutes=60",
		"/api/v1/rooms/3/availability?startTime=09:30&durationMinutes=60",
		"/api/v1/rooms/3/availability?date=2026-10-20&startTime=9h&durationMinutes=60",
		"/api/v1/rooms/3/availability?date=2026-10-20&startTime=09:30&durationMinutes=x",
	}

	for _, target := range targets {
		uc := &fakeUseCase{}
		rec := serve(uc, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Nil(t, uc.got, target)
	}
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{checkAvailability.ErrRoomNotFound, http.StatusNotFound},
		{checkAvailability.ErrRoomUnavailable, http.StatusBadRequest},
		{fmt.Errorf("%w: crosses midnight", checkAvailability.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("%w: conn refused", checkAvailability.ErrInternal), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		rec := serve(&fakeUseCase{err: tt.err}, "/api/v1/rooms/3/availability?date=2026-10-20&startTime=09:30&durationMinutes=60")
		assert.Equal(t, tt.want, rec.Code, tt.err.Error())
	}
}
