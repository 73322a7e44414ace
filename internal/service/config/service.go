package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	configRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/config"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/config/models"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
)

// Service сервис расписания комнат (рабочие часы и шаг поиска слотов)
type Service struct {
	configRepo ConfigRepository
	roomRepo   RoomRepository
	defaults   domain.RoomScheduleConfig
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
// defaults - последний уровень иерархии (значения из config.toml)
func NewService(
	configRepo ConfigRepository,
	roomRepo RoomRepository,
	defaults *domain.RoomScheduleConfig,
	logger Logger,
) *Service {
	if defaults == nil {
		defaults = domain.DefaultScheduleConfig()
	}
	return &Service{
		configRepo: configRepo,
		roomRepo:   roomRepo,
		defaults:   *defaults,
		logger:     logger,
	}
}

// Resolve возвращает действующее расписание комнаты
// Приоритет: комната > глобальная запись в БД > config.toml
func (s *Service) Resolve(ctx context.Context, roomID int64) (*domain.RoomScheduleConfig, error) {
	config, err := s.configRepo.GetConfigWithHierarchy(ctx, roomID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			defaults := s.defaults
			return &defaults, nil
		}
		s.logger.Error("Resolve: repository error for room=%d: %v", roomID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return config, nil
}

// GetForRoom возвращает действующее расписание комнаты с указанием уровня
func (s *Service) GetForRoom(ctx context.Context, roomID int64) (*models.ConfigResponse, error) {
	s.logger.Info("GetForRoom: fetching config for room=%d", roomID)

	if err := s.ensureRoomExists(ctx, "GetForRoom", roomID); err != nil {
		return nil, err
	}

	config, err := s.Resolve(ctx, roomID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetForRoom: room=%d uses %s config", roomID, models.Level(config))
	return models.FromDomainConfig(roomID, config), nil
}

// UpdateForRoom создает или обновляет конфигурацию уровня комнаты
// Непереданные поля берутся из действующей конфигурации
func (s *Service) UpdateForRoom(ctx context.Context, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("UpdateForRoom: updating config for room=%d", req.RoomID)

	// 1. Проверяем комнату
	if err := s.ensureRoomExists(ctx, "UpdateForRoom", req.RoomID); err != nil {
		return nil, err
	}

	// 2. Ищем существующую конфигурацию комнаты
	existing, err := s.configRepo.GetByRoom(ctx, ptr.Ptr(req.RoomID))
	if err != nil && !errors.Is(err, configRepo.ErrConfigNotFound) {
		s.logger.Error("UpdateForRoom: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: UpdateForRoom - repository error: %v", ErrInternal, err)
	}

	// 3. База для изменений: своя запись комнаты или унаследованная конфигурация
	var base domain.RoomScheduleConfig
	if existing != nil {
		base = *existing
	} else {
		inherited, err := s.Resolve(ctx, req.RoomID)
		if err != nil {
			return nil, err
		}
		base = *inherited
		base.ID = 0
		base.RoomID = ptr.Ptr(req.RoomID)
	}

	// 4. Применяем и валидируем
	if err := req.ApplyToConfig(&base); err != nil {
		s.logger.Warn("UpdateForRoom: invalid time for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := ValidateSchedule(&base); err != nil {
		s.logger.Warn("UpdateForRoom: validation failed for room=%d: %v", req.RoomID, err)
		return nil, err
	}

	// 5. Сохраняем
	var saved *domain.RoomScheduleConfig
	if existing != nil {
		saved, err = s.configRepo.Update(ctx, existing.ID, &base)
	} else {
		saved, err = s.configRepo.Create(ctx, &base)
	}
	if err != nil {
		s.logger.Error("UpdateForRoom: failed to save config for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: UpdateForRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateForRoom: saved config id=%d for room=%d", saved.ID, req.RoomID)
	return models.FromDomainConfig(req.RoomID, saved), nil
}

// ValidateSchedule проверяет рабочие часы и шаг поиска
func ValidateSchedule(c *domain.RoomScheduleConfig) error {
	if err := c.DayStart.Validate(); err != nil {
		return fmt.Errorf("%w: dayStart: %v", ErrInvalidInput, err)
	}
	if err := c.DayEnd.Validate(); err != nil {
		return fmt.Errorf("%w: dayEnd: %v", ErrInvalidInput, err)
	}
	if !c.DayStart.IsBefore(c.DayEnd) {
		return fmt.Errorf("%w: dayStart must be before dayEnd", ErrInvalidInput)
	}
	if c.StepMinutes < domain.MinStepMinutes || c.StepMinutes > domain.MaxStepMinutes {
		return fmt.Errorf("%w: stepMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStepMinutes, domain.MaxStepMinutes)
	}
	if c.MaxSearchSteps < domain.MinSearchSteps || c.MaxSearchSteps > domain.MaxSearchSteps {
		return fmt.Errorf("%w: maxSearchSteps must be between %d and %d",
			ErrInvalidInput, domain.MinSearchSteps, domain.MaxSearchSteps)
	}
	return nil
}

func (s *Service) ensureRoomExists(ctx context.Context, op string, roomID int64) error {
	if _, err := s.roomRepo.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("%s: room id=%d not found", op, roomID)
			return ErrRoomNotFound
		}
		s.logger.Error("%s: failed to get room id=%d: %v", op, roomID, err)
		return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	return nil
}
