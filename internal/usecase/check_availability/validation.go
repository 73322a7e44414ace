package check_availability

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные и строит интервал
func validateRequest(req *Request) (domain.Interval, error) {
	if req.RoomID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	// Длительность и переход через полночь проверяет domain.NewInterval
	interval, err := domain.NewInterval(req.StartTime, req.DurationMinutes)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return interval, nil
}
