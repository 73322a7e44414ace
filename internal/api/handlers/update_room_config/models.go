package update_room_config

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/service/config/models"
)

// UpdateRoomConfigRequest HTTP request model
type UpdateRoomConfigRequest struct {
	DayStart       *string `json:"dayStart,omitempty"`
	DayEnd         *string `json:"dayEnd,omitempty"`
	StepMinutes    *int    `json:"stepMinutes,omitempty"`
	MaxSearchSteps *int    `json:"maxSearchSteps,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateRoomConfigRequest) ToServiceRequest(roomID int64) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		RoomID:         roomID,
		DayStart:       r.DayStart,
		DayEnd:         r.DayEnd,
		StepMinutes:    r.StepMinutes,
		MaxSearchSteps: r.MaxSearchSteps,
	}
}
