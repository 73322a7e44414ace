package check_availability

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID           int64  `json:"roomId"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	DurationMinutes  int    `json:"durationMinutes"`
	Available        bool   `json:"available"`
	ConflictingCount int    `json:"conflictingCount"`
}

// ToUseCaseRequest собирает запрос из пути и query параметров
// Query params: date, startTime, durationMinutes
func ToUseCaseRequest(r *http.Request, roomID int64) (*checkAvailability.Request, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.URL.Query().Get("startTime"))
	if err != nil {
		return nil, err
	}

	duration, err := handlers.QueryInt(r, "durationMinutes", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid durationMinutes: %w", err)
	}

	return &checkAvailability.Request{
		RoomID:          roomID,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:           resp.RoomID,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Available:        resp.Available,
		ConflictingCount: resp.ConflictingCount,
	}
}
