package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для получения сетки слотов комнаты на день
type UseCase struct {
	roomRepo     RoomRepository
	schedule     ScheduleResolver
	checker      AvailabilityChecker
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	schedule ScheduleResolver,
	checker AvailabilityChecker,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		schedule:     schedule,
		checker:      checker,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: room=%d, date=%s, duration=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем комнату
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("GetAvailableSlots: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if !room.IsAvailable {
		uc.logger.Warn("GetAvailableSlots: room id=%d is not available", req.RoomID)
		return nil, ErrRoomUnavailable
	}

	// 4. Получаем расписание с учетом иерархии
	config, err := uc.schedule.Resolve(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to resolve schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrInternal, err)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = config.StepMinutes
	}

	// 5. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(config, duration, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomID:          req.RoomID,
		Date:            req.Date,
		DayStart:        config.DayStart,
		DayEnd:          config.DayEnd,
		StepMinutes:     config.StepMinutes,
		DurationMinutes: duration,
		Slots:           []domain.AvailableSlot{},
	}

	if len(timeSlots) == 0 {
		uc.logger.Info("GetAvailableSlots: no slots for room=%d on %s", req.RoomID, req.Date.Format(domain.DateFormat))
		return resp, nil
	}

	// 6. Получаем все активные бронирования комнаты на дату
	bookings, err := uc.checker.ListActive(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Вычисляем доступность для каждого слота
	resp.Slots = calculateAvailability(timeSlots, func(slot domain.Interval) int {
		return uc.checker.CountConflicts(slot, bookings)
	})

	uc.logger.Info("GetAvailableSlots: generated %d slots for room=%d, date=%s",
		len(resp.Slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
