package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// ScheduleResolver возвращает действующее расписание комнаты с учетом иерархии
type ScheduleResolver interface {
	Resolve(ctx context.Context, roomID int64) (*domain.RoomScheduleConfig, error)
}

// AvailabilityChecker источник активных бронирований и подсчет пересечений
type AvailabilityChecker interface {
	ListActive(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
	CountConflicts(candidate domain.Interval, bookings []*domain.Booking) int
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
