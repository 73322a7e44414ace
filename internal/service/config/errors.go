package config

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = fmt.Errorf("config.service: room %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("config.service: %w", domain.ErrInvalidArgument)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("config.service: %w", domain.ErrStorageUnavailable)
)
