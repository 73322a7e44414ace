package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

var configColumns = []string{
	"id",
	"room_id",
	"day_start",
	"day_end",
	"step_minutes",
	"max_search_steps",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписанием комнат
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую конфигурацию
func (r *Repository) Create(ctx context.Context, config *domain.RoomScheduleConfig) (*domain.RoomScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_schedule_config").
		Columns(
			"room_id",
			"day_start",
			"day_end",
			"step_minutes",
			"max_search_steps",
		).
		Values(
			config.RoomID,
			config.DayStart,
			config.DayEnd,
			config.StepMinutes,
			config.MaxSearchSteps,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}

// GetByRoom получает конфигурацию конкретного уровня:
// roomID задан - конфигурация комнаты, nil - глобальная конфигурация
func (r *Repository) GetByRoom(ctx context.Context, roomID *int64) (*domain.RoomScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(configColumns...).
		From("room_schedule_config")

	if roomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *roomID})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": nil})
	}

	query, args, err := selectBuilder.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoom - build select query: %v", ErrBuildQuery, err)
	}

	var config domain.RoomScheduleConfig
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&config.ID,
		&config.RoomID,
		&config.DayStart,
		&config.DayEnd,
		&config.StepMinutes,
		&config.MaxSearchSteps,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoom - scan config: %v", ErrScanRow, err)
	}

	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return &config, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов
// Приоритет применения конфигурации:
// 1. Конфигурация конкретной комнаты (room_id)
// 2. Глобальная конфигурация (room_id IS NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, roomID int64) (*domain.RoomScheduleConfig, error) {
	config, err := r.GetByRoom(ctx, &roomID)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}

	return r.GetByRoom(ctx, nil)
}

// Update обновляет рабочие часы и шаг поиска
func (r *Repository) Update(ctx context.Context, id int64, config *domain.RoomScheduleConfig) (*domain.RoomScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_schedule_config").
		Set("day_start", config.DayStart).
		Set("day_end", config.DayEnd).
		Set("step_minutes", config.StepMinutes).
		Set("max_search_steps", config.MaxSearchSteps).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	config.ID = id
	config.CreatedAt = createdAt.Time
	config.UpdatedAt = updatedAt.Time

	return config, nil
}
