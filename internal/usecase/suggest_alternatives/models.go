package suggest_alternatives

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Виды результата поиска (метка метрики suggestions_total)
const (
	KindSameRoom  = "same_room"
	KindOtherRoom = "other_room"
	KindNone      = "none"
)

// Request модель запроса на поиск альтернатив
type Request struct {
	RoomID           int64            // ID исходной комнаты
	Date             time.Time        // Дата встречи
	DesiredStart     types.TimeString // Желаемое время начала
	DurationMinutes  int              // Длительность в минутах
	RequiredCapacity int              // Минимальная вместимость альтернативной комнаты
}

// Response найденные альтернативы
// Оба поля nil - нормальный результат "ничего не найдено"
type Response struct {
	RoomID            int64
	Date              time.Time
	DesiredStart      types.TimeString
	DurationMinutes   int
	SameRoomSlot      *types.TimeString // Ближайшее свободное время в той же комнате
	AlternativeRoomID *int64            // Самая маленькая подходящая свободная комната
}
