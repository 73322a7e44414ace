package get_room_bookings

import (
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request, roomID int64) (*models.GetRoomBookingsRequest, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, err
	}

	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
	}

	return &models.GetRoomBookingsRequest{
		RoomID:           roomID,
		Date:             date,
		IncludeCancelled: includeCancelled,
	}, nil
}
