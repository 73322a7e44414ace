package suggest_alternatives

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	suggestAlternatives "github.com/m04kA/SMC-RoomBookingService/internal/usecase/suggest_alternatives"
)

const (
	msgInvalidRoomID   = "некорректный ID комнаты"
	msgInvalidParams   = "некорректные параметры запроса: нужны date (YYYY-MM-DD), startTime (HH:MM), durationMinutes"
	msgInvalidInterval = "некорректный интервал встречи"
	msgRoomNotFound    = "комната не найдена"
	msgSearchFailed    = "не удалось подобрать альтернативы"
)

type Handler struct {
	useCase SuggestAlternativesUseCase
	logger  Logger
}

func NewHandler(useCase SuggestAlternativesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/suggestions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/suggestions - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(r, roomID)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/suggestions - Invalid parameters: room_id=%d, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestAlternatives.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/suggestions - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, suggestAlternatives.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/suggestions - Invalid interval: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /rooms/{id}/suggestions - Failed to suggest: room_id=%d, error=%v", roomID, err)
			handlers.RespondDomainError(w, err, msgSearchFailed)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/suggestions - Suggestions built: room_id=%d, same_room=%t, other_room=%t",
		roomID, result.SameRoomSlot != nil, result.AlternativeRoomID != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
