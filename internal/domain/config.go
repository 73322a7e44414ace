package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// RoomScheduleConfig рабочие часы и шаг поиска слотов
// Поддерживает иерархию:
// 1. Конкретная комната (room_id)
// 2. Глобальная настройка (room_id IS NULL)
// 3. Значения из config.toml
type RoomScheduleConfig struct {
	ID             int64
	RoomID         *int64 // NULL = для всех комнат
	DayStart       types.TimeString
	DayEnd         types.TimeString
	StepMinutes    int
	MaxSearchSteps int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsGlobalConfig returns true if this configuration applies to all rooms
func (c *RoomScheduleConfig) IsGlobalConfig() bool {
	return c.RoomID == nil
}

// IsRoomSpecific returns true if this configuration is for a specific room
func (c *RoomScheduleConfig) IsRoomSpecific() bool {
	return c.RoomID != nil
}

// DefaultScheduleConfig рабочие часы по умолчанию (09:00-17:00, шаг 30 минут)
func DefaultScheduleConfig() *RoomScheduleConfig {
	return &RoomScheduleConfig{
		DayStart:       DefaultDayStart,
		DayEnd:         DefaultDayEnd,
		StepMinutes:    DefaultStepMinutes,
		MaxSearchSteps: DefaultMaxSearchSteps,
	}
}
