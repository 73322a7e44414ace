package suggest_alternatives

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// validateRequest валидирует входные данные и строит желаемый интервал
func validateRequest(req *Request) (domain.Interval, error) {
	if req.RoomID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.DesiredStart.Validate(); err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid desiredStart: %v", ErrInvalidInput, err)
	}

	if req.RequiredCapacity < 1 {
		return domain.Interval{}, fmt.Errorf("%w: requiredCapacity must be at least 1", ErrInvalidInput)
	}

	interval, err := domain.NewInterval(req.DesiredStart, req.DurationMinutes)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return interval, nil
}
