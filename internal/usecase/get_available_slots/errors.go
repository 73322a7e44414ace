package get_available_slots

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = fmt.Errorf("get_available_slots: room not found: %w", domain.ErrNotFound)

	// ErrRoomUnavailable возвращается, когда комната выведена из использования
	ErrRoomUnavailable = fmt.Errorf("get_available_slots: room is not available: %w", domain.ErrInvalidArgument)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_available_slots: invalid input data: %w", domain.ErrInvalidArgument)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = fmt.Errorf("get_available_slots: internal error: %w", domain.ErrStorageUnavailable)
)
