package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на получение сетки слотов
type Request struct {
	RoomID          int64     // ID комнаты
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes int       // Длительность встречи, 0 - равна шагу расписания
}

// Response модель ответа с сеткой слотов на день
type Response struct {
	RoomID          int64
	Date            time.Time
	DayStart        types.TimeString
	DayEnd          types.TimeString
	StepMinutes     int
	DurationMinutes int
	Slots           []domain.AvailableSlot
}
