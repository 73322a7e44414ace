package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

var testDate = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil)
	return NewRepository(db), db, mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func newBooking() *domain.Booking {
	return &domain.Booking{
		RoomID:          3,
		BookingDate:     testDate,
		StartTime:       "09:00",
		DurationMinutes: 60,
		State:           domain.StateBooked,
		Participants:    4,
		Topic:           "Sprint planning",
		PIC:             "Rina",
		MeetingType:     domain.MeetingInternal,
		FoodOrder:       domain.FoodNone,
		Source:          domain.SourceForm,
		IdempotencyKey:  ptr.Ptr("session-1"),
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO bookings").
		WithArgs(int64(3), "2026-10-20", "09:00", 60, "BOOKED", 4, "Sprint planning", "Rina",
			"internal", "tidak", "form", "session-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))

	created, err := repo.Create(context.Background(), newBooking())
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, now, created.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolation(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "bookings_no_overlap"})

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRepository_Create_DuplicateIdempotencyKey(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_idempotency_key_key"})

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrDuplicateIdempotencyKey)
}

func TestRepository_Create_SerializationFailureKeepsCause(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.ErrorAs(t, err, &pqErr)
	assert.Equal(t, pq.ErrorCode("40001"), pqErr.Code)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
		WithArgs(int64(11)).
		WillReturnRows(bookingRows().AddRow(
			11, 3, testDate, time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC), 60, "BOOKED",
			4, "Sprint planning", "Rina", "internal", "tidak", "form", nil, now, now,
		))

	b, err := repo.GetByID(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, int64(3), b.RoomID)
	assert.Equal(t, "09:00", b.StartTime.String())
	assert.Equal(t, domain.StateBooked, b.State)
	assert.Nil(t, b.IdempotencyKey)
	assert.Equal(t, now, b.CreatedAt)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newTestRepository(t)

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_ListActiveByRoomAndDate(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE (.+) AND state = \\$3 ORDER BY start_time ASC, id ASC").
		WithArgs("2026-10-20", int64(3), "BOOKED").
		WillReturnRows(bookingRows().
			AddRow(1, 3, testDate, "09:00:00", 60, "BOOKED", 2, "a", "p", "internal", "tidak", "form", nil, now, now).
			AddRow(2, 3, testDate, "13:30:00", 30, "BOOKED", 2, "b", "p", "external", "ringan", "assistant", "k", now, now))

	bookings, err := repo.ListActiveByRoomAndDate(context.Background(), 3, testDate)
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "13:30", bookings[1].StartTime.String())
	assert.Equal(t, domain.SourceAssistant, bookings[1].Source)
	require.NotNil(t, bookings[1].IdempotencyKey)
	assert.Equal(t, "k", *bookings[1].IdempotencyKey)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockRoomDay(t *testing.T) {
	repo, db, mock := newTestRepository(t)
	ctx := context.Background()

	assert.ErrorIs(t, repo.LockRoomDay(ctx, 3, testDate), ErrTransaction)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock\\(\\$1, \\$2\\)").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, repo.LockRoomDay(dbmetrics.WithTx(ctx, tx), 3, testDate))
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	repo, _, mock := newTestRepository(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE bookings SET state = \\$1, updated_at = NOW\\(\\) WHERE (.+) RETURNING").
		WillReturnRows(bookingRows().
			AddRow(5, 3, testDate, "10:00:00", 60, "CANCELLED", 2, "a", "p", "internal", "tidak", "form", nil, now, now))

	b, err := repo.Cancel(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.StateCancelled, b.State)

	mock.ExpectQuery("UPDATE bookings").WillReturnRows(bookingRows())
	_, err = repo.Cancel(context.Background(), 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
