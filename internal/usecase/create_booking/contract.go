package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error)
	LockRoomDay(ctx context.Context, roomID int64, date time.Time) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// AvailabilityChecker проверка интервала на пересечения
type AvailabilityChecker interface {
	Check(ctx context.Context, roomID int64, date time.Time, candidate domain.Interval) (availability.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// IdempotencyStore быстрый путь для повторных запросов с тем же ключом
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, bookingID int64) error
}

// MirrorRepository документное зеркало бронирований ассистента
type MirrorRepository interface {
	Upsert(ctx context.Context, booking *domain.Booking) error
}

// EventPublisher публикует событие о созданном бронировании
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, b *domain.Booking) error
}

// Metrics бизнес-метрики создания бронирований
type Metrics interface {
	IncBookingCreated(source string)
	IncBookingConflict()
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
