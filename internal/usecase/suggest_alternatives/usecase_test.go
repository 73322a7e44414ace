package suggest_alternatives

import (
	"context"
	"errors"
	"sort"
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
	rooms   []*domain.Room
	listErr error
}

func (r *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	for _, room := range r.rooms {
		if room.ID == id {
			return room, nil
		}
	}
	return nil, roomRepo.ErrRoomNotFound
}

func (r *fakeRoomRepo) ListAvailableWithMinCapacity(_ context.Context, minCapacity int) ([]*domain.Room, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var result []*domain.Room
	for _, room := range r.rooms {
		if room.IsAvailable && room.Capacity >= minCapacity {
			result = append(result, room)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Capacity != result[j].Capacity {
			return result[i].Capacity < result[j].Capacity
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

type fakeSchedule struct {
	config *domain.RoomScheduleConfig
}

func (s *fakeSchedule) Resolve(context.Context, int64) (*domain.RoomScheduleConfig, error) {
	copied := *s.config
	return &copied, nil
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

type recordingMetrics struct {
	kinds []string
}

func (m *recordingMetrics) IncSuggestion(kind string) {
	m.kinds = append(m.kinds, kind)
}

type fixture struct {
	uc       *UseCase
	rooms    *fakeRoomRepo
	source   *fakeBookingSource
	schedule *fakeSchedule
	metrics  *recordingMetrics
}

func newFixture(rooms []*domain.Room, bookings ...*domain.Booking) *fixture {
	f := &fixture{
		rooms:    &fakeRoomRepo{rooms: rooms},
		source:   &fakeBookingSource{bookings: bookings},
		schedule: &fakeSchedule{config: domain.DefaultScheduleConfig()},
		metrics:  &recordingMetrics{},
	}
	checker := availability.NewChecker(f.source, logger.NewNop())
	f.uc = NewUseCase(f.rooms, f.schedule, checker, f.metrics, logger.NewNop())
	return f
}

func booked(id, roomID int64, start string, duration int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		RoomID:          roomID,
		BookingDate:     testDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		State:           domain.StateBooked,
	}
}

func request(roomID int64, start string, duration, capacity int) *Request {
	return &Request{
		RoomID:           roomID,
		Date:             testDate,
		DesiredStart:     types.TimeString(start),
		DurationMinutes:  duration,
		RequiredCapacity: capacity,
	}
}

func singleRoom() []*domain.Room {
	return []*domain.Room{{ID: 1, Capacity: 8, IsAvailable: true}}
}

func TestUseCase_SameRoomForwardSearch(t *testing.T) {
	f := newFixture(singleRoom(), booked(1, 1, "09:00", 60))

	resp, err := f.uc.Execute(context.Background(), request(1, "09:00", 60, 1))
	require.NoError(t, err)
	require.NotNil(t, resp.SameRoomSlot)
	// 09:30 пересекается с [09:00, 10:00), первый свободный - 10:00
	assert.Equal(t, "10:00", resp.SameRoomSlot.String())
	assert.Nil(t, resp.AlternativeRoomID)
	assert.Equal(t, []string{KindSameRoom}, f.metrics.kinds)
}

func TestUseCase_DesiredSlotFree(t *testing.T) {
	f := newFixture(singleRoom())

	resp, err := f.uc.Execute(context.Background(), request(1, "11:00", 30, 1))
	require.NoError(t, err)
	require.NotNil(t, resp.SameRoomSlot)
	assert.Equal(t, "11:00", resp.SameRoomSlot.String())
}

func TestUseCase_SearchIsCapped(t *testing.T) {
	// Занято до 12:30: кандидаты 09:00..12:00 (7 шагов) все пересекаются
	f := newFixture(singleRoom(), booked(1, 1, "09:00", 210))

	resp, err := f.uc.Execute(context.Background(), request(1, "09:00", 60, 1))
	require.NoError(t, err)
	assert.Nil(t, resp.SameRoomSlot)
	assert.Equal(t, []string{KindNone}, f.metrics.kinds)

	f.schedule.config.MaxSearchSteps = 7
	resp, err = f.uc.Execute(context.Background(), request(1, "09:00", 60, 1))
	require.NoError(t, err)
	require.NotNil(t, resp.SameRoomSlot)
	assert.Equal(t, "12:30", resp.SameRoomSlot.String())
}

func TestUseCase_CandidatesBeforeDayStartAreSkipped(t *testing.T) {
	f := newFixture(singleRoom())

	resp, err := f.uc.Execute(context.Background(), request(1, "08:00", 60, 1))
	require.NoError(t, err)
	require.NotNil(t, resp.SameRoomSlot)
	assert.Equal(t, "09:00", resp.SameRoomSlot.String())
}

func TestUseCase_CandidateMustEndBeforeDayEnd(t *testing.T) {
	f := newFixture(singleRoom())

	resp, err := f.uc.Execute(context.Background(), request(1, "16:30", 60, 1))
	require.NoError(t, err)
	assert.Nil(t, resp.SameRoomSlot)

	resp, err = f.uc.Execute(context.Background(), request(1, "16:00", 60, 1))
	require.NoError(t, err)
	require.NotNil(t, resp.SameRoomSlot)
	assert.Equal(t, "16:00", resp.SameRoomSlot.String())
}

func TestUseCase_CapacityOrderedRoomFallback(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Capacity: 8, IsAvailable: true},
		{ID: 10, Capacity: 4, IsAvailable: true},  // A: занята
		{ID: 11, Capacity: 10, IsAvailable: true}, // C: свободна
		{ID: 12, Capacity: 6, IsAvailable: true},  // B: свободна
		{ID: 13, Capacity: 5, IsAvailable: false}, // выведена из использования
	}
	f := newFixture(rooms,
		booked(1, 1, "09:00", 480),
		booked(2, 10, "09:00", 60),
	)

	resp, err := f.uc.Execute(context.Background(), request(1, "09:00", 60, 4))
	require.NoError(t, err)
	assert.Nil(t, resp.SameRoomSlot)
	require.NotNil(t, resp.AlternativeRoomID)
	assert.Equal(t, int64(12), *resp.AlternativeRoomID)
	assert.Equal(t, []string{KindOtherRoom}, f.metrics.kinds)
}

func TestUseCase_FallbackTieBreaksByID(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Capacity: 6, IsAvailable: true},
		{ID: 7, Capacity: 6, IsAvailable: true},
		{ID: 5, Capacity: 6, IsAvailable: true},
	}
	f := newFixture(rooms)

	resp, err := f.uc.Execute(context.Background(), request(1, "09:00", 60, 6))
	require.NoError(t, err)
	require.NotNil(t, resp.AlternativeRoomID)
	assert.Equal(t, int64(5), *resp.AlternativeRoomID)
}

func TestUseCase_UnavailableRoomOnlyOffersOtherRooms(t *testing.T) {
	rooms := []*domain.Room{
		{ID: 1, Capacity: 8, IsAvailable: false},
		{ID: 2, Capacity: 8, IsAvailable: true},
	}
	f := newFixture(rooms)

	resp, err := f.uc.Execute(context.Background(), request(1, "09:00", 60, 2))
	require.NoError(t, err)
	assert.Nil(t, resp.SameRoomSlot)
	require.NotNil(t, resp.AlternativeRoomID)
	assert.Equal(t, int64(2), *resp.AlternativeRoomID)
}

func TestUseCase_InvalidInput(t *testing.T) {
	f := newFixture(singleRoom())

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero room", request(0, "09:00", 60, 1)},
		{"bad time", request(1, "9:00", 60, 1)},
		{"zero duration", request(1, "09:00", 0, 1)},
		{"crosses midnight", request(1, "23:00", 90, 1)},
		{"zero capacity", request(1, "09:00", 60, 0)},
		{"missing date", &Request{RoomID: 1, DesiredStart: "09:00", DurationMinutes: 60, RequiredCapacity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestUseCase_RoomNotFound(t *testing.T) {
	f := newFixture(singleRoom())

	_, err := f.uc.Execute(context.Background(), request(99, "09:00", 60, 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUseCase_StorageUnavailable(t *testing.T) {
	f := newFixture(singleRoom())
	f.source.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), request(1, "09:00", 60, 1))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	f = newFixture(singleRoom())
	f.rooms.listErr = errors.New("connection refused")
	_, err = f.uc.Execute(context.Background(), request(1, "09:00", 60, 1))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
