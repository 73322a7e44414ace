package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingSource хранилище, умеющее отдавать BOOKED бронирования комнаты на дату
// Реализуется реляционным репозиторием и документным зеркалом
type BookingSource interface {
	ListActiveByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
}

// FullBookingSource основное хранилище, которое отдаёт и отменённые бронирования
// Нужен, чтобы устаревшая копия в зеркале не воскрешала отменённую запись
type FullBookingSource interface {
	BookingSource
	ListByRoomAndDate(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error)
}

// Metrics бизнес-метрики проверок доступности
type Metrics interface {
	IncAvailabilityCheck(available bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) IncAvailabilityCheck(bool) {}
