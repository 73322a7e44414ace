package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgMissingDate     = "дата обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "некорректная длительность"
	msgRoomNotFound    = "комната не найдена"
	msgRoomUnavailable = "комната недоступна для бронирования"
	msgSlotsFailed     = "не удалось получить слоты"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/available-slots
// Query params: date (required, YYYY-MM-DD), durationMinutes (опционально, по умолчанию шаг расписания)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	if r.URL.Query().Get("date") == "" {
		h.logger.Warn("GET /rooms/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := handlers.QueryInt(r, "durationMinutes", 0)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(roomID, date, duration))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/available-slots - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getAvailableSlots.ErrRoomUnavailable):
			h.logger.Warn("GET /rooms/{id}/available-slots - Room unavailable: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/available-slots - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /rooms/{id}/available-slots - Failed to get slots: room_id=%d, error=%v", roomID, err)
			handlers.RespondDomainError(w, err, msgSlotsFailed)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/available-slots - Slots retrieved successfully: room_id=%d, slots_count=%d",
		roomID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
