package domain

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// Default schedule values
const (
	DefaultDayStart       types.TimeString = "09:00"
	DefaultDayEnd         types.TimeString = "17:00"
	DefaultStepMinutes                     = 30
	DefaultMaxSearchSteps                  = 6 // 180 минут вперёд
)

// Business validation constants
const (
	MinStepMinutes    = 5
	MaxStepMinutes    = 240
	MinSearchSteps    = 1
	MaxSearchSteps    = 48
	MaxTopicLength    = 255
	MaxPICLength      = 255
	MaxIdempotencyKey = 128
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
