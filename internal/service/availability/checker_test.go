package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var testDate = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

type fakeSource struct {
	bookings []*domain.Booking
	err      error
	calls    int
}

func (s *fakeSource) ListActiveByRoomAndDate(_ context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID == roomID && b.BookingDate.Equal(date) && b.IsActive() {
			result = append(result, b)
		}
	}
	return result, nil
}

type countingMetrics struct {
	available, busy int
}

func (m *countingMetrics) IncAvailabilityCheck(available bool) {
	if available {
		m.available++
	} else {
		m.busy++
	}
}

func booking(id int64, start string, duration int, state domain.BookingState) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		RoomID:          1,
		BookingDate:     testDate,
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		State:           state,
	}
}

func interval(t *testing.T, start string, duration int) domain.Interval {
	t.Helper()
	i, err := domain.NewInterval(types.TimeString(start), duration)
	require.NoError(t, err)
	return i
}

func TestChecker_Check(t *testing.T) {
	source := &fakeSource{bookings: []*domain.Booking{
		booking(1, "09:00", 60, domain.StateBooked),
		booking(2, "13:00", 60, domain.StateCancelled),
	}}
	checker := NewChecker(source, logger.NewNop())
	ctx := context.Background()

	t.Run("touching boundary is free", func(t *testing.T) {
		res, err := checker.Check(ctx, 1, testDate, interval(t, "10:00", 60))
		require.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, 0, res.ConflictingCount)
	})

	t.Run("strict overlap conflicts", func(t *testing.T) {
		res, err := checker.Check(ctx, 1, testDate, interval(t, "09:30", 60))
		require.NoError(t, err)
		assert.False(t, res.Available)
		assert.Equal(t, 1, res.ConflictingCount)
	})

	t.Run("cancelled bookings are ignored", func(t *testing.T) {
		res, err := checker.Check(ctx, 1, testDate, interval(t, "13:00", 60))
		require.NoError(t, err)
		assert.True(t, res.Available)
	})

	t.Run("other room is independent", func(t *testing.T) {
		res, err := checker.Check(ctx, 2, testDate, interval(t, "09:00", 60))
		require.NoError(t, err)
		assert.True(t, res.Available)
	})
}

func TestChecker_CountConflicts_Multiple(t *testing.T) {
	checker := NewChecker(&fakeSource{}, logger.NewNop())

	bookings := []*domain.Booking{
		booking(1, "09:00", 30, domain.StateBooked),
		booking(2, "09:30", 30, domain.StateBooked),
		booking(3, "10:00", 30, domain.StateBooked),
		booking(4, "09:15", 30, domain.StateCancelled),
		booking(5, "09:45", 0, domain.StateBooked), // битая запись
	}

	assert.Equal(t, 2, checker.CountConflicts(interval(t, "09:00", 60), bookings))
	assert.Equal(t, 3, checker.CountConflicts(interval(t, "09:00", 90), bookings))
}

func TestChecker_MergesMirrorAndDedupes(t *testing.T) {
	primary := &fakeSource{bookings: []*domain.Booking{booking(1, "09:00", 60, domain.StateBooked)}}
	mirror := &fakeSource{bookings: []*domain.Booking{
		booking(1, "09:00", 60, domain.StateBooked), // уже есть в основном хранилище
		booking(0, "09:30", 30, domain.StateBooked), // запись без ID не дедуплицируется
	}}
	checker := NewChecker(primary, logger.NewNop(), WithMirror(mirror))

	all, err := checker.ListActive(context.Background(), 1, testDate)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	res, err := checker.Check(context.Background(), 1, testDate, interval(t, "09:15", 30))
	require.NoError(t, err)
	assert.Equal(t, 2, res.ConflictingCount)
}

func TestChecker_MirrorFailureIsIgnored(t *testing.T) {
	primary := &fakeSource{bookings: []*domain.Booking{booking(1, "09:00", 60, domain.StateBooked)}}
	mirror := &fakeSource{err: errors.New("mongo down")}
	checker := NewChecker(primary, logger.NewNop(), WithMirror(mirror))

	res, err := checker.Check(context.Background(), 1, testDate, interval(t, "09:00", 30))
	require.NoError(t, err)
	assert.Equal(t, 1, res.ConflictingCount)
	assert.Equal(t, 1, mirror.calls)
}

func TestChecker_PrimaryFailure(t *testing.T) {
	checker := NewChecker(&fakeSource{err: errors.New("connection refused")}, logger.NewNop())

	_, err := checker.Check(context.Background(), 1, testDate, interval(t, "09:00", 30))
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestChecker_Metrics(t *testing.T) {
	m := &countingMetrics{}
	source := &fakeSource{bookings: []*domain.Booking{booking(1, "09:00", 60, domain.StateBooked)}}
	checker := NewChecker(source, logger.NewNop(), WithMetrics(m))

	_, _ = checker.Check(context.Background(), 1, testDate, interval(t, "09:00", 30))
	_, _ = checker.Check(context.Background(), 1, testDate, interval(t, "11:00", 30))

	assert.Equal(t, 1, m.available)
	assert.Equal(t, 1, m.busy)
}

type fullSource struct {
	fakeSource
}

func (s *fullSource) ListByRoomAndDate(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.RoomID != filter.RoomID || !b.BookingDate.Equal(filter.Date) {
			continue
		}
		if !filter.IncludeCancelled && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func TestChecker_StaleMirrorCopyOfCancelledBooking(t *testing.T) {
	primary := &fullSource{fakeSource{bookings: []*domain.Booking{
		booking(7, "09:00", 60, domain.StateCancelled),
		booking(8, "11:00", 60, domain.StateBooked),
	}}}
	mirror := &fakeSource{bookings: []*domain.Booking{
		booking(7, "09:00", 60, domain.StateBooked), // отмена не дошла до зеркала
		booking(9, "14:00", 30, domain.StateBooked), // неизвестна основному хранилищу
	}}
	checker := NewChecker(primary, logger.NewNop(), WithMirror(mirror))
	ctx := context.Background()

	res, err := checker.Check(ctx, 1, testDate, interval(t, "09:00", 60))
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 0, res.ConflictingCount)

	all, err := checker.ListActive(ctx, 1, testDate)
	require.NoError(t, err)
	ids := make([]int64, 0, len(all))
	for _, b := range all {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []int64{8, 9}, ids)
}

func TestChecker_FullSourceWithoutMirrorReadsActiveOnly(t *testing.T) {
	primary := &fullSource{fakeSource{bookings: []*domain.Booking{
		booking(1, "09:00", 60, domain.StateCancelled),
	}}}
	checker := NewChecker(primary, logger.NewNop())

	all, err := checker.ListActive(context.Background(), 1, testDate)
	require.NoError(t, err)
	assert.Empty(t, all)
}
