package domain

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// Suggestion альтернативы для занятого интервала
// Отсутствие обеих альтернатив - нормальный результат, а не ошибка
type Suggestion struct {
	SameRoomSlot      *types.TimeString
	AlternativeRoomID *int64
}

// IsEmpty returns true if nothing was found
func (s *Suggestion) IsEmpty() bool {
	return s.SameRoomSlot == nil && s.AlternativeRoomID == nil
}
