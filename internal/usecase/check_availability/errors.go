package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = fmt.Errorf("check_availability: room not found: %w", domain.ErrNotFound)

	// ErrRoomUnavailable возвращается, когда комната выведена из использования
	ErrRoomUnavailable = fmt.Errorf("check_availability: room is not available: %w", domain.ErrInvalidArgument)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("check_availability: invalid input data: %w", domain.ErrInvalidArgument)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("check_availability: internal error: %w", domain.ErrStorageUnavailable)
)
