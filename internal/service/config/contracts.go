package config

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// ConfigRepository интерфейс репозитория расписания комнат
type ConfigRepository interface {
	Create(ctx context.Context, config *domain.RoomScheduleConfig) (*domain.RoomScheduleConfig, error)
	GetByRoom(ctx context.Context, roomID *int64) (*domain.RoomScheduleConfig, error)
	GetConfigWithHierarchy(ctx context.Context, roomID int64) (*domain.RoomScheduleConfig, error)
	Update(ctx context.Context, id int64, config *domain.RoomScheduleConfig) (*domain.RoomScheduleConfig, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
