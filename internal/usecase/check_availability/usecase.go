package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для проверки доступности комнаты
type UseCase struct {
	roomRepo RoomRepository
	checker  AvailabilityChecker
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, checker AvailabilityChecker, logger Logger) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		checker:  checker,
		logger:   logger,
	}
}

// Execute проверяет, свободен ли интервал в комнате на дату
// Только чтение, повторный вызов безопасен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, date=%s, time=%s, duration=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Комната должна существовать и быть доступной
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsAvailable {
		uc.logger.Warn("CheckAvailability: room id=%d is not available", req.RoomID)
		return nil, ErrRoomUnavailable
	}

	// 3. Считаем пересечения
	result, err := uc.checker.Check(ctx, req.RoomID, req.Date, interval)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to check room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckAvailability: room=%d interval=%s available=%t conflicts=%d",
		req.RoomID, interval, result.Available, result.ConflictingCount)

	return &Response{
		RoomID:           req.RoomID,
		Date:             req.Date,
		StartTime:        req.StartTime,
		DurationMinutes:  req.DurationMinutes,
		Available:        result.Available,
		ConflictingCount: result.ConflictingCount,
	}, nil
}
