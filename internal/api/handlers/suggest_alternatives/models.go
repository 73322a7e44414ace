package suggest_alternatives

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	suggestAlternatives "github.com/m04kA/SMC-RoomBookingService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// SuggestionsResponse HTTP response model
// sameRoomSlot и alternativeRoomId равны null, если ничего не найдено
type SuggestionsResponse struct {
	RoomID            int64   `json:"roomId"`
	Date              string  `json:"date"`
	DesiredStart      string  `json:"desiredStart"`
	DurationMinutes   int     `json:"durationMinutes"`
	SameRoomSlot      *string `json:"sameRoomSlot"`
	AlternativeRoomID *int64  `json:"alternativeRoomId"`
}

// ToUseCaseRequest собирает запрос из пути и query параметров
// Query params: date, startTime, durationMinutes, capacity (по умолчанию 1)
func ToUseCaseRequest(r *http.Request, roomID int64) (*suggestAlternatives.Request, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}

	desired, err := types.NewTimeStringFromString(r.URL.Query().Get("startTime"))
	if err != nil {
		return nil, err
	}

	duration, err := handlers.QueryInt(r, "durationMinutes", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid durationMinutes: %w", err)
	}

	capacity, err := handlers.QueryInt(r, "capacity", 1)
	if err != nil {
		return nil, fmt.Errorf("invalid capacity: %w", err)
	}

	return &suggestAlternatives.Request{
		RoomID:           roomID,
		Date:             date,
		DesiredStart:     desired,
		DurationMinutes:  duration,
		RequiredCapacity: capacity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *suggestAlternatives.Response) *SuggestionsResponse {
	out := &SuggestionsResponse{
		RoomID:            resp.RoomID,
		Date:              resp.Date.Format(domain.DateFormat),
		DesiredStart:      resp.DesiredStart.String(),
		DurationMinutes:   resp.DurationMinutes,
		AlternativeRoomID: resp.AlternativeRoomID,
	}
	if resp.SameRoomSlot != nil {
		slot := resp.SameRoomSlot.String()
		out.SameRoomSlot = &slot
	}
	return out
}
