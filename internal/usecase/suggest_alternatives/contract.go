package suggest_alternatives

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	// ListAvailableWithMinCapacity возвращает доступные комнаты по возрастанию вместимости
	ListAvailableWithMinCapacity(ctx context.Context, minCapacity int) ([]*domain.Room, error)
}

// ScheduleResolver возвращает действующее расписание комнаты
type ScheduleResolver interface {
	Resolve(ctx context.Context, roomID int64) (*domain.RoomScheduleConfig, error)
}

// AvailabilityChecker проверка интервалов на пересечения
type AvailabilityChecker interface {
	ListActive(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error)
	CountConflicts(candidate domain.Interval, bookings []*domain.Booking) int
	Check(ctx context.Context, roomID int64, date time.Time, candidate domain.Interval) (availability.Result, error)
}

// Metrics бизнес-метрики поиска альтернатив
type Metrics interface {
	IncSuggestion(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
