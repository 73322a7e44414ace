package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", domain.ErrInvalidArgument), http.StatusBadRequest},
		{fmt.Errorf("x: %w", domain.ErrNotFound), http.StatusNotFound},
		{&domain.ConflictError{ConflictingCount: 2}, http.StatusConflict},
		{fmt.Errorf("x: %w", domain.ErrStorageUnavailable), http.StatusServiceUnavailable},
		{fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFromError(tt.err), tt.err.Error())
	}
}

func TestRespondDomainError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondDomainError(rec, fmt.Errorf("pq: %w", domain.ErrStorageUnavailable), "secret")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	var v struct {
		RoomID int64 `json:"roomId"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"roomId": 1}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, int64(1), v.RoomID)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"roomId": 1, "extra": true}`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestPathInt64(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"roomId": "42"})
	id, err := PathInt64(req, "roomId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"roomId": "-1"})
	_, err = PathInt64(req, "roomId")
	assert.Error(t, err)
}

func TestQueryHelpers(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?date=2026-10-20&durationMinutes=45&includeCancelled=true", nil)

	date, err := QueryDate(req, "date")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20", date.Format(domain.DateFormat))

	d, err := QueryInt(req, "durationMinutes", 0)
	require.NoError(t, err)
	assert.Equal(t, 45, d)

	d, err = QueryInt(req, "capacity", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	b, err := QueryBool(req, "includeCancelled")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = QueryDate(httptest.NewRequest(http.MethodGet, "/?date=20-10-2026", nil), "date")
	assert.Error(t, err)
}
