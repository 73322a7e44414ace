package domain

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Interval занятый промежуток времени [Start, End) в пределах одних суток
type Interval struct {
	Start types.TimeString
	End   types.TimeString
}

// NewInterval строит интервал из времени начала и длительности
// Интервалы, переходящие через полночь (включая конец ровно в 24:00), не поддерживаются
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	if durationMinutes <= 0 {
		return Interval{}, fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidInterval, durationMinutes)
	}
	if err := start.Validate(); err != nil {
		return Interval{}, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}

	end, err := start.AddMinutes(durationMinutes)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: %s + %d minutes crosses midnight", ErrInvalidInterval, start, durationMinutes)
	}

	return Interval{Start: start, End: end}, nil
}

// Overlaps проверяет строгое пересечение: касание границ пересечением не считается
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.IsBefore(other.End) && other.Start.IsBefore(i.End)
}

// Within returns true if the interval lies inside [from, to]
func (i Interval) Within(from, to types.TimeString) bool {
	return !i.Start.IsBefore(from) && !i.End.IsAfter(to)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start, i.End)
}
