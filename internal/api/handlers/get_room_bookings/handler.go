package get_room_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
)

const (
	msgInvalidRoomID = "некорректный ID комнаты"
	msgInvalidParams = "некорректные параметры запроса"
	msgRoomNotFound  = "комната не найдена"
	msgListFailed    = "не удалось получить бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/bookings
// Query params: date (required), includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := handlers.PathInt64(r, "roomId")
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/bookings - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	serviceReq, err := ToServiceRequest(r, roomID)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetRoomBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/bookings - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/bookings - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /rooms/{id}/bookings - Failed to get bookings: room_id=%d, error=%v", roomID, err)
			handlers.RespondDomainError(w, err, msgListFailed)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/bookings - Bookings retrieved successfully: room_id=%d, count=%d",
		roomID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
