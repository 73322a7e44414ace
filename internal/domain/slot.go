package domain

import "github.com/m04kA/SMC-RoomBookingService/pkg/types"

// AvailableSlot represents a step-aligned slot of the day grid
type AvailableSlot struct {
	StartTime        types.TimeString
	EndTime          types.TimeString
	DurationMinutes  int
	Available        bool
	ConflictingCount int
}
