package create_booking

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable   = "выбранный интервал занят"
	msgRoomNotFound       = "комната не найдена"
	msgRoomUnavailable    = "комната недоступна для бронирования"
	msgCapacityExceeded   = "участников больше, чем вмещает комната"
	msgInvalidBookingDate = "нельзя бронировать на прошедшую дату"
	msgInvalidData        = "некорректные данные бронирования"
	msgCreateFailed       = "не удалось создать бронирование"
)

type Handler struct {
	useCase   CreateBookingUseCase
	suggester SuggestAlternativesUseCase
	logger    Logger
}

func NewHandler(useCase CreateBookingUseCase, suggester SuggestAlternativesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		suggester: suggester,
		logger:    logger,
	}
}

// Handle POST /api/v1/bookings
// 201 - создано, 200 - повтор запроса с тем же ключом идемпотентности
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(r.Header.Get(HeaderIdempotencyKey))
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: room_id=%d, date=%s, start=%s",
				req.RoomID, req.BookingDate, req.StartTime)
			h.respondConflict(r.Context(), w, useCaseReq, domain.ConflictingCount(err))

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: room_id=%d, participants=%d", req.RoomID, req.Participants)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: room_id=%d, date=%s", req.RoomID, req.BookingDate)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid data: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondDomainError(w, err, msgCreateFailed)
		}
		return
	}

	response := FromUseCaseResponse(result)

	if result.Replayed {
		h.logger.Info("POST /bookings - Idempotent replay: booking_id=%d, room_id=%d", result.ID, result.RoomID)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, source=%s",
		result.ID, result.RoomID, result.Source)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// respondConflict отвечает 409 с альтернативами
// Сбой подбора не меняет статус ответа, suggestions тогда null
func (h *Handler) respondConflict(ctx context.Context, w http.ResponseWriter, req *createBooking.Request, conflicting int) {
	body := ConflictResponse{
		Error:            msgSlotNotAvailable,
		ConflictingCount: conflicting,
	}

	if h.suggester != nil {
		suggestions, err := h.suggester.Execute(ctx, ToSuggestRequest(req))
		if err != nil {
			h.logger.Error("POST /bookings - Failed to build suggestions: room_id=%d, error=%v", req.RoomID, err)
		} else {
			body.Suggestions = FromSuggestResponse(suggestions)
		}
	}

	handlers.RespondJSON(w, http.StatusConflict, body)
}
