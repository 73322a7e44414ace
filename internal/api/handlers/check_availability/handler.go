package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidRoomID    = "некорректный ID комнаты"
	msgInvalidParams    = "некорректные параметры запроса: нужны date (YYYY-MM-DD), startTime (HH:MM), durationMinutes"
	msgInvalidInterval  = "некорректный интервал встречи"
	msgRoomNotFound     = "комната не найдена"
	msgRoomUnavailable  = "комната недоступна для бронирования"
	msgCheckUnavailable = "не удалось проверить доступность"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(r, roomID)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid parameters: room_id=%d, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, checkAvailability.ErrRoomUnavailable):
			h.logger.Warn("GET /rooms/{id}/availability - Room unavailable: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid interval: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check availability: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondDomainError(w, err, msgCheckUnavailable)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - Checked: room_id=%d, start=%s, available=%t, conflicts=%d",
		roomID, result.StartTime, result.Available, result.ConflictingCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
