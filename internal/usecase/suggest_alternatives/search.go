package suggest_alternatives

import (
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// candidateStarts генерирует кандидатов той же комнаты: desired + i*step, i = 0..maxSearchSteps
// Кандидаты раньше начала рабочего дня пропускаются, но шаг всё равно расходуется
// Перебор останавливается на первом интервале, выходящем за конец рабочего дня или за полночь
func candidateStarts(desired types.TimeString, durationMinutes int, config *domain.RoomScheduleConfig) []domain.Interval {
	desiredMinutes, err := desired.Minutes()
	if err != nil {
		return nil
	}

	candidates := make([]domain.Interval, 0, config.MaxSearchSteps+1)
	for i := 0; i <= config.MaxSearchSteps; i++ {
		start, err := types.NewTimeStringFromMinutes(desiredMinutes + i*config.StepMinutes)
		if err != nil {
			break
		}

		if start.IsBefore(config.DayStart) {
			continue
		}

		interval, err := domain.NewInterval(start, durationMinutes)
		if err != nil || interval.End.IsAfter(config.DayEnd) {
			break
		}

		candidates = append(candidates, interval)
	}

	return candidates
}

// firstFree возвращает первый кандидат без пересечений
func firstFree(candidates []domain.Interval, countConflicts func(domain.Interval) int) *types.TimeString {
	for _, candidate := range candidates {
		if countConflicts(candidate) == 0 {
			start := candidate.Start
			return &start
		}
	}
	return nil
}
