package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = fmt.Errorf("create_booking: room not found: %w", domain.ErrNotFound)

	// ErrRoomUnavailable возвращается, когда комната выведена из использования
	ErrRoomUnavailable = fmt.Errorf("create_booking: room is not available: %w", domain.ErrInvalidArgument)

	// ErrCapacityExceeded возвращается, когда участников больше, чем вмещает комната
	ErrCapacityExceeded = fmt.Errorf("create_booking: participants exceed room capacity: %w", domain.ErrInvalidArgument)

	// ErrInvalidDate возвращается при бронировании на прошедшую дату
	ErrInvalidDate = fmt.Errorf("create_booking: invalid booking date: %w", domain.ErrInvalidArgument)

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующими бронированиями
	// Вместе с ним в цепочке всегда есть *domain.ConflictError с количеством пересечений
	ErrSlotNotAvailable = fmt.Errorf("create_booking: slot is not available: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input data: %w", domain.ErrInvalidArgument)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("create_booking: internal error: %w", domain.ErrStorageUnavailable)

	// errDuplicateKey внутренний сигнал: ключ идемпотентности занят параллельным запросом
	errDuplicateKey = errors.New("create_booking: duplicate idempotency key")
)
