package update_room_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/config"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "комната не найдена"
	msgInvalidData        = "некорректные данные конфигурации"
	msgUpdateFailed       = "не удалось обновить конфигурацию"
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

// Handle PUT /api/v1/rooms/{roomId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("PUT /rooms/{id}/config - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var req UpdateRoomConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rooms/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateForRoom(r.Context(), req.ToServiceRequest(roomID))
	if err != nil {
		switch {
		case errors.Is(err, config.ErrRoomNotFound):
			h.logger.Warn("PUT /rooms/{id}/config - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, config.ErrInvalidInput):
			h.logger.Warn("PUT /rooms/{id}/config - Invalid data: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /rooms/{id}/config - Failed to update config: room_id=%d, error=%v", roomID, err)
			handlers.RespondDomainError(w, err, msgUpdateFailed)
		}
		return
	}

	h.logger.Info("PUT /rooms/{id}/config - Config updated successfully: room_id=%d, config_id=%d",
		roomID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
