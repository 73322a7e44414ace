package availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrStorage возвращается, когда основное хранилище бронирований недоступно
	ErrStorage = fmt.Errorf("availability: %w", domain.ErrStorageUnavailable)
)
