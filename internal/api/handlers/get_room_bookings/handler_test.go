package get_room_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type fakeService struct {
	got  *models.GetRoomBookingsRequest
	list []models.BookingResponse
	err  error
}

func (f *fakeService) GetRoomBookings(_ context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BookingListResponse{Bookings: f.list}, nil
}

func serve(svc *fakeService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/rooms/{roomId}/bookings", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_List(t *testing.T) {
	svc := &fakeService{list: []models.BookingResponse{{ID: 1}, {ID: 2}}}

	rec := serve(svc, "/api/v1/rooms/3/bookings?date=2026-10-20&includeCancelled=true")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":2`)
	assert.True(t, svc.got.IncludeCancelled)
	assert.Equal(t, int64(3), svc.got.RoomID)
}

func TestHandler_EmptyListIsArray(t *testing.T) {
	rec := serve(&fakeService{list: []models.BookingResponse{}}, "/api/v1/rooms/3/bookings?date=2026-10-20")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_Errors(t *testing.T) {
	rec := serve(&fakeService{}, "/api/v1/rooms/3/bookings")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&fakeService{}, "/api/v1/rooms/3/bookings?date=2026-10-20&includeCancelled=maybe")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(&fakeService{err: bookings.ErrRoomNotFound}, "/api/v1/rooms/3/bookings?date=2026-10-20")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(&fakeService{err: bookings.ErrInternal}, "/api/v1/rooms/3/bookings?date=2026-10-20")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
