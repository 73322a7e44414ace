package get_room_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/config"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgRoomNotFound  = "комната не найдена"
	msgGetFailed     = "не удалось получить конфигурацию"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/config
// Без записи в БД возвращаются значения по умолчанию (level=default)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/config - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	result, err := h.service.GetForRoom(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, config.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/config - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/config - Failed to get config: room_id=%d, error=%v", roomID, err)
			handlers.RespondDomainError(w, err, msgGetFailed)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/config - Config retrieved successfully: room_id=%d, level=%s",
		roomID, result.Level)
	handlers.RespondJSON(w, http.StatusOK, result)
}
