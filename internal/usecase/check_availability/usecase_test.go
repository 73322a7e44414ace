package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var testDate = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room
	err   error
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if r.err != nil {
		return nil, r.err
	}
	room, ok := r.rooms[id]
	if !ok {
		return nil, roomRepo.ErrRoomNotFound
	}
	return room, nil
}

type fakeBookingSource struct {
	bookings []*domain.Booking
	err      error
}

func (s *fakeBookingSource) ListActiveByRoomAndDate(_ context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []*domain.Booking
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.BookingDate.Equal(date) && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

func newFixture(bookings ...*domain.Booking) (*UseCase, *fakeRoomRepo, *fakeBookingSource) {
	rooms := &fakeRoomRepo{rooms: map[int64]*domain.Room{
		1: {ID: 1, Capacity: 6, IsAvailable: true},
		2: {ID: 2, Capacity: 4, IsAvailable: false},
	}}
	source := &fakeBookingSource{bookings: bookings}
	checker := availability.NewChecker(source, logger.NewNop())
	return NewUseCase(rooms, checker, logger.NewNop()), rooms, source
}

func booked(start string, duration int, state domain.BookingState) *domain.Booking {
	return &domain.Booking{
		ID:              1,
		RoomID:          1,
		BookingDate:     testDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		State:           state,
	}
}

func request(start string, duration int) *Request {
	return &Request{RoomID: 1, Date: testDate, StartTime: types.TimeString(start), DurationMinutes: duration}
}

func TestUseCase_Execute(t *testing.T) {
	tests := []struct {
		name          string
		existing      *domain.Booking
		start         string
		duration      int
		wantAvailable bool
		wantConflicts int
	}{
		{
			name:          "touching boundary is not a conflict",
			existing:      booked("09:00", 60, domain.StateBooked),
			start:         "10:00",
			duration:      60,
			wantAvailable: true,
		},
		{
			name:          "strict overlap",
			existing:      booked("09:00", 60, domain.StateBooked),
			start:         "09:30",
			duration:      60,
			wantAvailable: false,
			wantConflicts: 1,
		},
		{
			name:          "cancelled booking is ignored",
			existing:      booked("09:00", 60, domain.StateCancelled),
			start:         "09:00",
			duration:      60,
			wantAvailable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, _ := newFixture(tt.existing)

			resp, err := uc.Execute(context.Background(), request(tt.start, tt.duration))
			require.NoError(t, err)
			assert.Equal(t, tt.wantAvailable, resp.Available)
			assert.Equal(t, tt.wantConflicts, resp.ConflictingCount)
			assert.Equal(t, int64(1), resp.RoomID)
			assert.Equal(t, tt.start, resp.StartTime.String())
			assert.Equal(t, tt.duration, resp.DurationMinutes)
		})
	}
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc, _, _ := newFixture()

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero room", &Request{RoomID: 0, Date: testDate, StartTime: "09:00", DurationMinutes: 30}},
		{"missing date", &Request{RoomID: 1, StartTime: "09:00", DurationMinutes: 30}},
		{"missing start", &Request{RoomID: 1, Date: testDate, DurationMinutes: 30}},
		{"bad start", &Request{RoomID: 1, Date: testDate, StartTime: "9am", DurationMinutes: 30}},
		{"zero duration", &Request{RoomID: 1, Date: testDate, StartTime: "09:00", DurationMinutes: 0}},
		{"negative duration", &Request{RoomID: 1, Date: testDate, StartTime: "09:00", DurationMinutes: -15}},
		{"crosses midnight", &Request{RoomID: 1, Date: testDate, StartTime: "23:30", DurationMinutes: 60}},
		{"room unavailable", &Request{RoomID: 2, Date: testDate, StartTime: "09:00", DurationMinutes: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestUseCase_Execute_RoomNotFound(t *testing.T) {
	uc, _, _ := newFixture()

	_, err := uc.Execute(context.Background(), &Request{RoomID: 77, Date: testDate, StartTime: "09:00", DurationMinutes: 30})
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUseCase_Execute_StorageUnavailable(t *testing.T) {
	uc, rooms, source := newFixture()

	source.err = errors.New("connection refused")
	_, err := uc.Execute(context.Background(), request("09:00", 30))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	rooms.err = errors.New("connection refused")
	_, err = uc.Execute(context.Background(), request("09:00", 30))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
