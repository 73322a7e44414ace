package check_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на проверку интервала
type Request struct {
	RoomID          int64            // ID комнаты
	Date            time.Time        // Дата встречи (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность в минутах
}

// Response результат проверки
// Занятость - нормальный результат, а не ошибка
type Response struct {
	RoomID           int64
	Date             time.Time
	StartTime        types.TimeString
	DurationMinutes  int
	Available        bool
	ConflictingCount int
}
