package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// generateTimeSlots генерирует интервалы на день с начала рабочего дня с фиксированным шагом
// Интервал попадает в сетку, только если заканчивается не позже конца рабочего дня
// Для сегодняшней даты отбрасываются слоты, которые уже начались
func generateTimeSlots(
	config *domain.RoomScheduleConfig,
	durationMinutes int,
	requestDate time.Time,
	now time.Time,
) ([]domain.Interval, error) {
	// Для прошедших дат сетка пустая
	if isDateInPast(requestDate, now) {
		return []domain.Interval{}, nil
	}

	dayStart, err := config.DayStart.Minutes()
	if err != nil {
		return nil, err
	}

	// Шаг 1: все слоты рабочего дня
	slots := make([]domain.Interval, 0)
	for minute := dayStart; minute < types.MinutesPerDay; minute += config.StepMinutes {
		start, err := types.NewTimeStringFromMinutes(minute)
		if err != nil {
			return nil, err
		}

		interval, err := domain.NewInterval(start, durationMinutes)
		if err != nil || interval.End.IsAfter(config.DayEnd) {
			break
		}

		slots = append(slots, interval)
	}

	// Шаг 2: если дата не сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return slots, nil
	}

	// Шаг 3: сегодня оставляем только слоты, начинающиеся не раньше текущего времени
	currentTime := types.NewTimeString(now)
	upcoming := make([]domain.Interval, 0, len(slots))
	for _, slot := range slots {
		if !slot.Start.IsBefore(currentTime) {
			upcoming = append(upcoming, slot)
		}
	}

	return upcoming, nil
}

// calculateAvailability помечает каждый слот свободным или занятым
func calculateAvailability(
	slots []domain.Interval,
	countConflicts func(domain.Interval) int,
) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, len(slots))

	for i, slot := range slots {
		conflicts := countConflicts(slot)
		result[i] = domain.AvailableSlot{
			StartTime:        slot.Start,
			EndTime:          slot.End,
			DurationMinutes:  durationOf(slot),
			Available:        conflicts == 0,
			ConflictingCount: conflicts,
		}
	}

	return result
}

func durationOf(slot domain.Interval) int {
	start, _ := slot.Start.Minutes()
	end, _ := slot.End.Minutes()
	return end - start
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
