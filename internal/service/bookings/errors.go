package bookings

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("bookings.service: booking not found: %w", domain.ErrNotFound)

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = fmt.Errorf("bookings.service: room not found: %w", domain.ErrNotFound)

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = fmt.Errorf("bookings.service: booking cannot be cancelled: %w", domain.ErrInvalidArgument)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("bookings.service: invalid input data: %w", domain.ErrInvalidArgument)

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = fmt.Errorf("bookings.service: internal error: %w", domain.ErrStorageUnavailable)
)
