package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Уровни, с которых взята конфигурация
const (
	LevelRoom    = "room"
	LevelGlobal  = "global"
	LevelDefault = "default"
)

// Request модели

// UpdateConfigRequest запрос на обновление расписания комнаты
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	RoomID         int64   `json:"-"`
	DayStart       *string `json:"dayStart,omitempty"` // "09:00"
	DayEnd         *string `json:"dayEnd,omitempty"`   // "17:00"
	StepMinutes    *int    `json:"stepMinutes,omitempty"`
	MaxSearchSteps *int    `json:"maxSearchSteps,omitempty"`
}

// ApplyToConfig применяет переданные поля к конфигурации
func (r *UpdateConfigRequest) ApplyToConfig(c *domain.RoomScheduleConfig) error {
	if r.DayStart != nil {
		t, err := types.NewTimeStringFromString(*r.DayStart)
		if err != nil {
			return err
		}
		c.DayStart = t
	}
	if r.DayEnd != nil {
		t, err := types.NewTimeStringFromString(*r.DayEnd)
		if err != nil {
			return err
		}
		c.DayEnd = t
	}
	if r.StepMinutes != nil {
		c.StepMinutes = *r.StepMinutes
	}
	if r.MaxSearchSteps != nil {
		c.MaxSearchSteps = *r.MaxSearchSteps
	}
	return nil
}

// Response модели

// ConfigResponse действующее расписание комнаты
type ConfigResponse struct {
	ID             int64      `json:"id,omitempty"`
	RoomID         int64      `json:"roomId"`
	Level          string     `json:"level"` // room / global / default
	DayStart       string     `json:"dayStart"`
	DayEnd         string     `json:"dayEnd"`
	StepMinutes    int        `json:"stepMinutes"`
	MaxSearchSteps int        `json:"maxSearchSteps"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(roomID int64, c *domain.RoomScheduleConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:             c.ID,
		RoomID:         roomID,
		Level:          Level(c),
		DayStart:       c.DayStart.String(),
		DayEnd:         c.DayEnd.String(),
		StepMinutes:    c.StepMinutes,
		MaxSearchSteps: c.MaxSearchSteps,
	}
	if !c.CreatedAt.IsZero() {
		createdAt, updatedAt := c.CreatedAt, c.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// Level определяет уровень иерархии, с которого взята конфигурация
func Level(c *domain.RoomScheduleConfig) string {
	switch {
	case c.ID == 0:
		return LevelDefault
	case c.IsRoomSpecific():
		return LevelRoom
	default:
		return LevelGlobal
	}
}
