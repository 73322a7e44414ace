package get_available_slots

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

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type fakeRoomRepo struct{}

func (fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	switch id {
	case 1:
		return &domain.Room{ID: 1, Capacity: 6, IsAvailable: true}, nil
	case 2:
		return &domain.Room{ID: 2, Capacity: 6, IsAvailable: false}, nil
	default:
		return nil, roomRepo.ErrRoomNotFound
	}
}

type fakeSchedule struct {
	config *domain.RoomScheduleConfig
	err    error
}

func (s *fakeSchedule) Resolve(context.Context, int64) (*domain.RoomScheduleConfig, error) {
	if s.err != nil {
		return nil, s.err
	}
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

func newTestUseCase(now time.Time, schedule *fakeSchedule, source *fakeBookingSource) *UseCase {
	checker := availability.NewChecker(source, logger.NewNop())
	uc := NewUseCase(fakeRoomRepo{}, schedule, checker, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func defaultSchedule() *fakeSchedule {
	return &fakeSchedule{config: domain.DefaultScheduleConfig()}
}

func TestUseCase_Execute_Grid(t *testing.T) {
	source := &fakeBookingSource{bookings: []*domain.Booking{
		{ID: 1, RoomID: 1, BookingDate: testDate, StartTime: "10:00", DurationMinutes: 60, State: domain.StateBooked},
		{ID: 2, RoomID: 1, BookingDate: testDate, StartTime: "14:00", DurationMinutes: 60, State: domain.StateCancelled},
	}}
	uc := newTestUseCase(testDate.AddDate(0, 0, -1), defaultSchedule(), source)

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate, DurationMinutes: 60})
	require.NoError(t, err)

	// 09:00..16:00 с шагом 30 минут, последний слот заканчивается ровно в 17:00
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:00"), resp.Slots[14].StartTime)
	assert.Equal(t, types.TimeString("17:00"), resp.Slots[14].EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)

	byStart := make(map[types.TimeString]domain.AvailableSlot, len(resp.Slots))
	for _, s := range resp.Slots {
		byStart[s.StartTime] = s
	}

	assert.True(t, byStart["09:00"].Available, "touching boundary is free")
	assert.False(t, byStart["09:30"].Available)
	assert.False(t, byStart["10:00"].Available)
	assert.False(t, byStart["10:30"].Available)
	assert.Equal(t, 1, byStart["10:30"].ConflictingCount)
	assert.True(t, byStart["11:00"].Available)
	assert.True(t, byStart["14:00"].Available, "cancelled booking is ignored")
}

func TestUseCase_Execute_DefaultDurationIsStep(t *testing.T) {
	uc := newTestUseCase(testDate.AddDate(0, 0, -1), defaultSchedule(), &fakeBookingSource{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Len(t, resp.Slots, 16)
}

func TestUseCase_Execute_PastDateAndToday(t *testing.T) {
	uc := newTestUseCase(testDate.AddDate(0, 0, 1), defaultSchedule(), &fakeBookingSource{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate, DurationMinutes: 30})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	uc = newTestUseCase(testDate.Add(15*time.Hour+10*time.Minute), defaultSchedule(), &fakeBookingSource{})
	resp, err = uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate, DurationMinutes: 30})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("15:30"), resp.Slots[0].StartTime)
}

func TestUseCase_Execute_RoomSchedule(t *testing.T) {
	schedule := &fakeSchedule{config: &domain.RoomScheduleConfig{
		ID: 3, DayStart: "08:00", DayEnd: "10:00", StepMinutes: 60, MaxSearchSteps: 2,
	}}
	uc := newTestUseCase(testDate.AddDate(0, 0, -1), schedule, &fakeBookingSource{})

	resp, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, types.TimeString("08:00"), resp.DayStart)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[1].StartTime)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	past := testDate.AddDate(0, 0, -1)

	uc := newTestUseCase(past, defaultSchedule(), &fakeBookingSource{})
	_, err := uc.Execute(context.Background(), &Request{RoomID: 0, Date: testDate})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 2, Date: testDate})
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 9, Date: testDate})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	uc = newTestUseCase(past, defaultSchedule(), &fakeBookingSource{err: errors.New("timeout")})
	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	uc = newTestUseCase(past, &fakeSchedule{err: errors.New("timeout")}, &fakeBookingSource{})
	_, err = uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
