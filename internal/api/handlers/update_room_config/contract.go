package update_room_config

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/config/models"
)

type ConfigService interface {
	UpdateForRoom(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
