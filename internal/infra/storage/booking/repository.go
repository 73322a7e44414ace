package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"

	idempotencyKeyConstraint = "bookings_idempotency_key_key"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"booking_date",
	"start_time",
	"duration_minutes",
	"state",
	"participants",
	"topic",
	"pic",
	"meeting_type",
	"food_order",
	"source",
	"idempotency_key",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Пересечение с другим BOOKED интервалом отсекается exclusion constraint и возвращается как ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"room_id",
			"booking_date",
			"start_time",
			"duration_minutes",
			"state",
			"participants",
			"topic",
			"pic",
			"meeting_type",
			"food_order",
			"source",
			"idempotency_key",
		).
		Values(
			booking.RoomID,
			booking.BookingDate.Format(domain.DateFormat),
			booking.StartTime,
			booking.DurationMinutes,
			booking.State,
			booking.Participants,
			booking.Topic,
			booking.PIC,
			booking.MeetingType,
			booking.FoodOrder,
			booking.Source,
			booking.IdempotencyKey,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code == pgExclusionViolation:
				return nil, ErrSlotNotAvailable
			case pqErr.Code == pgUniqueViolation && pqErr.Constraint == idempotencyKeyConstraint:
				return nil, ErrDuplicateIdempotencyKey
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByIdempotencyKey получает бронирование по ключу идемпотентности
func (r *Repository) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByIdempotencyKey", squirrel.Eq{"idempotency_key": key})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %w", ErrScanRow, op, err)
	}

	return booking, nil
}

// ListActiveByRoomAndDate возвращает BOOKED бронирования комнаты на дату
// Единственный метод, который нужен проверке доступности от хранилища
func (r *Repository) ListActiveByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	return r.ListByRoomAndDate(ctx, domain.RoomBookingsFilter{RoomID: roomID, Date: date})
}

// ListByRoomAndDate получает бронирования комнаты на дату, отсортированные по времени начала
func (r *Repository) ListByRoomAndDate(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"room_id":      filter.RoomID,
			"booking_date": filter.Date.Format(domain.DateFormat),
		}).
		OrderBy("start_time ASC", "id ASC")

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"state": domain.StateBooked})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// LockRoomDay берёт транзакционную advisory-блокировку на пару (комната, дата)
// Блокировка только выстраивает конкурентов в очередь: снимок SERIALIZABLE транзакции
// уже взят на этом запросе, непересечение обеспечивает bookings_no_overlap.
// Снимается при commit/rollback
func (r *Repository) LockRoomDay(ctx context.Context, roomID int64, date time.Time) error {
	tx, ok := dbmetrics.GetTx(ctx)
	if !ok {
		return ErrTransaction
	}

	// Коллизии ключей после усечения до int4 только лишний раз сериализуют запросы
	dayKey := int32(date.Unix() / int64(24*time.Hour/time.Second))

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?, ?)", int32(roomID), dayKey)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: LockRoomDay - build lock query: %v", ErrBuildQuery, err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockRoomDay - execute lock: %w", ErrExecQuery, err)
	}

	return nil
}

// Cancel переводит бронирование в состояние CANCELLED
// Возвращает ErrBookingNotFound, если активного бронирования с таким ID нет
func (r *Repository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("state", domain.StateCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "state": domain.StateBooked}).
		Suffix("RETURNING " + strings.Join(bookingColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RoomID,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationMinutes,
		&booking.State,
		&booking.Participants,
		&booking.Topic,
		&booking.PIC,
		&booking.MeetingType,
		&booking.FoodOrder,
		&booking.Source,
		&booking.IdempotencyKey,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}
