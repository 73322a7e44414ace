package bookings

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByRoomAndDate(ctx context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// MirrorRepository документное зеркало бронирований ассистента
type MirrorRepository interface {
	UpdateState(ctx context.Context, bookingID int64, state domain.BookingState) error
}

// EventPublisher публикует события об изменении бронирований
type EventPublisher interface {
	PublishBookingCancelled(ctx context.Context, b *domain.Booking) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
