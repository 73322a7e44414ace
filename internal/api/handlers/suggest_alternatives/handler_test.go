package suggest_alternatives

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	suggestAlternatives "github.com/m04kA/SMC-RoomBookingService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

type fakeUseCase struct {
	got  *suggestAlternatives.Request
	resp *suggestAlternatives.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *suggestAlternatives.Request) (*suggestAlternatives.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	f.resp.Date = req.Date
	return f.resp, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/suggestions", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Found(t *testing.T) {
	slot := types.TimeString("10:00")
	uc := &fakeUseCase{resp: &suggestAlternatives.Response{
		RoomID:            3,
		DesiredStart:      "09:00",
		DurationMinutes:   60,
		SameRoomSlot:      &slot,
		AlternativeRoomID: ptr.Ptr(int64(7)),
	}}

	rec := serve(uc, "/api/v1/rooms/3/suggestions?date=2026-10-20&startTime=09:00&durationMinutes=60&capacity=8")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"roomId": 3,
		"date": "2026-10-20",
		"desiredStart": "09:00",
		"durationMinutes": 60,
		"sameRoomSlot": "10:00",
		"alternativeRoomId": 7
	}`, rec.Body.String())
	assert.Equal(t, 8, uc.got.RequiredCapacity)
}

func TestHandler_NothingFound(t *testing.T) {
	uc := &fakeUseCase{resp: &suggestAlternatives.Response{RoomID: 3, DesiredStart: "09:00", DurationMinutes: 60}}

	rec := serve(uc, "/api/v1/rooms/3/suggestions?date=2026-10-20&startTime=09:00&durationMinutes=60")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sameRoomSlot":null`)
	assert.Contains(t, rec.Body.String(), `"alternativeRoomId":null`)
	assert.Equal(t, 1, uc.got.RequiredCapacity)
}

func TestHandler_Errors(t *testing.T) {
	rec := serve(&fakeUseCase{err: suggestAlternatives.ErrRoomNotFound},
		"/api/v1/rooms/3/suggestions?date=2026-10-20&startTime=09:00&durationMinutes=60")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&fakeUseCase{err: suggestAlternatives.ErrInternal},
		"/api/v1/rooms/3/suggestions?date=2026-10-20&startTime=09:00&durationMinutes=60")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = serve(&fakeUseCase{}, "/api/v1/rooms/3/suggestions?date=2026-10-20&startTime=09:00&durationMinutes=60&capacity=many")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
