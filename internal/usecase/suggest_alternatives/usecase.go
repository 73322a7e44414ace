package suggest_alternatives

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// UseCase use case для поиска альтернатив занятому интервалу
type UseCase struct {
	roomRepo RoomRepository
	schedule ScheduleResolver
	checker  AvailabilityChecker
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	schedule ScheduleResolver,
	checker AvailabilityChecker,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo: roomRepo,
		schedule: schedule,
		checker:  checker,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute ищет ближайшее свободное время в той же комнате и свободную комнату на то же время
// Отсутствие альтернатив - нормальный результат, ошибка только при некорректном вводе или сбое хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestAlternatives: room=%d, date=%s, time=%s, duration=%d, capacity=%d",
		req.RoomID, req.Date.Format(domain.DateFormat), req.DesiredStart, req.DurationMinutes, req.RequiredCapacity)

	// 1. Валидация входных данных
	desired, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SuggestAlternatives: validation failed: %v", err)
		return nil, err
	}

	// 2. Исходная комната
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("SuggestAlternatives: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("SuggestAlternatives: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	resp := &Response{
		RoomID:          req.RoomID,
		Date:            req.Date,
		DesiredStart:    req.DesiredStart,
		DurationMinutes: req.DurationMinutes,
	}

	// 3. Та же комната, более позднее время (выведенная из использования комната пропускается)
	if room.IsAvailable {
		resp.SameRoomSlot, err = uc.searchSameRoom(ctx, req)
		if err != nil {
			return nil, err
		}
	} else {
		uc.logger.Info("SuggestAlternatives: room id=%d is not available, skipping same-room search", req.RoomID)
	}

	// 4. Другая комната на то же время
	resp.AlternativeRoomID, err = uc.searchOtherRoom(ctx, req, desired)
	if err != nil {
		return nil, err
	}

	uc.recordMetrics(resp)

	uc.logger.Info("SuggestAlternatives: room=%d sameRoomSlot=%s alternativeRoom=%s",
		req.RoomID, formatSlot(resp.SameRoomSlot), formatRoom(resp.AlternativeRoomID))

	return resp, nil
}

// searchSameRoom перебирает кандидатов с шагом из расписания комнаты
// Бронирования комнаты читаются один раз на весь перебор
func (uc *UseCase) searchSameRoom(ctx context.Context, req *Request) (*types.TimeString, error) {
	config, err := uc.schedule.Resolve(ctx, req.RoomID)
	if err != nil {
		uc.logger.Error("SuggestAlternatives: failed to resolve schedule for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to resolve schedule: %v", ErrInternal, err)
	}

	candidates := candidateStarts(req.DesiredStart, req.DurationMinutes, config)
	if len(candidates) == 0 {
		return nil, nil
	}

	bookings, err := uc.checker.ListActive(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Error("SuggestAlternatives: failed to list bookings for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	return firstFree(candidates, func(candidate domain.Interval) int {
		return uc.checker.CountConflicts(candidate, bookings)
	}), nil
}

// searchOtherRoom проверяет комнаты по возрастанию вместимости (затем по ID) на желаемый интервал
func (uc *UseCase) searchOtherRoom(ctx context.Context, req *Request, desired domain.Interval) (*int64, error) {
	rooms, err := uc.roomRepo.ListAvailableWithMinCapacity(ctx, req.RequiredCapacity)
	if err != nil {
		uc.logger.Error("SuggestAlternatives: failed to list rooms with capacity>=%d: %v", req.RequiredCapacity, err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	for _, candidate := range rooms {
		if candidate.ID == req.RoomID {
			continue
		}

		result, err := uc.checker.Check(ctx, candidate.ID, req.Date, desired)
		if err != nil {
			uc.logger.Error("SuggestAlternatives: failed to check room id=%d: %v", candidate.ID, err)
			return nil, fmt.Errorf("%w: failed to check room: %v", ErrInternal, err)
		}

		if result.Available {
			return ptr.Ptr(candidate.ID), nil
		}
	}

	return nil, nil
}

func (uc *UseCase) recordMetrics(resp *Response) {
	if uc.metrics == nil {
		return
	}
	if resp.SameRoomSlot != nil {
		uc.metrics.IncSuggestion(KindSameRoom)
	}
	if resp.AlternativeRoomID != nil {
		uc.metrics.IncSuggestion(KindOtherRoom)
	}
	if resp.SameRoomSlot == nil && resp.AlternativeRoomID == nil {
		uc.metrics.IncSuggestion(KindNone)
	}
}

func formatSlot(slot *types.TimeString) string {
	if slot == nil {
		return "none"
	}
	return slot.String()
}

func formatRoom(id *int64) string {
	if id == nil {
		return "none"
	}
	return fmt.Sprintf("%d", *id)
}
