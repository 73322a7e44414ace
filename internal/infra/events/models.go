package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Типы событий (используются как заголовок event_type)
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent полезная нагрузка события о бронировании
type BookingEvent struct {
	EventID         string    `json:"eventId"`
	EventType       string    `json:"eventType"`
	OccurredAt      time.Time `json:"occurredAt"`
	BookingID       int64     `json:"bookingId"`
	RoomID          int64     `json:"roomId"`
	Date            string    `json:"date"`
	StartTime       string    `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	State           string    `json:"state"`
	Participants    int       `json:"participants"`
	Source          string    `json:"source"`
}

// NewBookingEvent создает событие по бронированию
func NewBookingEvent(eventType string, b *domain.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		EventID:         uuid.NewString(),
		EventType:       eventType,
		OccurredAt:      now.UTC(),
		BookingID:       b.ID,
		RoomID:          b.RoomID,
		Date:            b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		State:           string(b.State),
		Participants:    b.Participants,
		Source:          string(b.Source),
	}
}
