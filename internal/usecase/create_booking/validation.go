package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// applyDefaults подставляет значения по умолчанию для необязательных полей
func applyDefaults(req *Request) {
	if req.MeetingType == "" {
		req.MeetingType = string(domain.MeetingInternal)
	}
	if req.FoodOrder == "" {
		req.FoodOrder = string(domain.FoodNone)
	}
	if req.Source == "" {
		req.Source = string(domain.SourceForm)
	}
	if req.IdempotencyKey != nil && strings.TrimSpace(*req.IdempotencyKey) == "" {
		req.IdempotencyKey = nil
	}
}

// validateRequest валидирует входные данные запроса и строит интервал
func validateRequest(req *Request) (domain.Interval, error) {
	if req.RoomID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return domain.Interval{}, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return domain.Interval{}, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	interval, err := domain.NewInterval(req.StartTime, req.DurationMinutes)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Participants < 1 {
		return domain.Interval{}, fmt.Errorf("%w: participants must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Topic) == "" || len(req.Topic) > domain.MaxTopicLength {
		return domain.Interval{}, fmt.Errorf("%w: topic is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxTopicLength)
	}

	if strings.TrimSpace(req.PIC) == "" || len(req.PIC) > domain.MaxPICLength {
		return domain.Interval{}, fmt.Errorf("%w: pic is required and must be at most %d characters",
			ErrInvalidInput, domain.MaxPICLength)
	}

	if !domain.MeetingType(req.MeetingType).IsValid() {
		return domain.Interval{}, fmt.Errorf("%w: unknown meetingType %q", ErrInvalidInput, req.MeetingType)
	}

	if !domain.FoodOrder(req.FoodOrder).IsValid() {
		return domain.Interval{}, fmt.Errorf("%w: unknown foodOrder %q", ErrInvalidInput, req.FoodOrder)
	}

	if !domain.BookingSource(req.Source).IsValid() {
		return domain.Interval{}, fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	if req.IdempotencyKey != nil && len(*req.IdempotencyKey) > domain.MaxIdempotencyKey {
		return domain.Interval{}, fmt.Errorf("%w: idempotencyKey must be at most %d characters",
			ErrInvalidInput, domain.MaxIdempotencyKey)
	}

	return interval, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}

// toDomainBooking строит новое бронирование из провалидированного запроса
func toDomainBooking(req *Request) *domain.Booking {
	return &domain.Booking{
		RoomID:          req.RoomID,
		BookingDate:     req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
		State:           domain.StateBooked,
		Participants:    req.Participants,
		Topic:           req.Topic,
		PIC:             req.PIC,
		MeetingType:     domain.MeetingType(req.MeetingType),
		FoodOrder:       domain.FoodOrder(req.FoodOrder),
		Source:          domain.BookingSource(req.Source),
		IdempotencyKey:  req.IdempotencyKey,
	}
}
