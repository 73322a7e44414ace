package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RoomID          int64           `json:"roomId"`
	Date            string          `json:"date"`
	DayStart        string          `json:"dayStart"`
	DayEnd          string          `json:"dayEnd"`
	StepMinutes     int             `json:"stepMinutes"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	DurationMinutes  int    `json:"durationMinutes"`
	Available        bool   `json:"available"`
	ConflictingCount int    `json:"conflictingCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:        slot.StartTime.String(),
			EndTime:          slot.EndTime.String(),
			DurationMinutes:  slot.DurationMinutes,
			Available:        slot.Available,
			ConflictingCount: slot.ConflictingCount,
		}
	}

	return &AvailableSlotsResponse{
		RoomID:          resp.RoomID,
		Date:            resp.Date.Format(domain.DateFormat),
		DayStart:        resp.DayStart.String(),
		DayEnd:          resp.DayEnd.String(),
		StepMinutes:     resp.StepMinutes,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(roomID int64, date time.Time, durationMinutes int) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		RoomID:          roomID,
		Date:            date,
		DurationMinutes: durationMinutes,
	}
}
