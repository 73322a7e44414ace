package suggest_alternatives

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда исходная комната не найдена
	ErrRoomNotFound = fmt.Errorf("suggest_alternatives: room not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("suggest_alternatives: invalid input data: %w", domain.ErrInvalidArgument)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("suggest_alternatives: internal error: %w", domain.ErrStorageUnavailable)
)
