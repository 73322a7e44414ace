package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID          int64            // ID комнаты
	Date            time.Time        // Дата встречи (без времени)
	StartTime       types.TimeString // Время начала (например, "10:00")
	DurationMinutes int              // Длительность в минутах
	Participants    int              // Количество участников
	Topic           string           // Тема встречи
	PIC             string           // Ответственный
	MeetingType     string           // internal / external, по умолчанию internal
	FoodOrder       string           // tidak / ringan / berat, по умолчанию tidak
	Source          string           // form / assistant, по умолчанию form
	IdempotencyKey  *string          // Ключ идемпотентности (опционально)
}

// Response модель ответа с сохранённым бронированием
type Response struct {
	ID              int64
	RoomID          int64
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	State           string

	Participants int
	Topic        string
	PIC          string
	MeetingType  string
	FoodOrder    string

	Source         string
	IdempotencyKey *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Replayed true, если бронирование уже было создано запросом с тем же ключом
	Replayed bool
}

func toResponse(b *domain.Booking, replayed bool) *Response {
	resp := &Response{
		ID:              b.ID,
		RoomID:          b.RoomID,
		BookingDate:     b.BookingDate,
		StartTime:       b.StartTime,
		DurationMinutes: b.DurationMinutes,
		State:           string(b.State),
		Participants:    b.Participants,
		Topic:           b.Topic,
		PIC:             b.PIC,
		MeetingType:     string(b.MeetingType),
		FoodOrder:       string(b.FoodOrder),
		Source:          string(b.Source),
		IdempotencyKey:  b.IdempotencyKey,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		Replayed:        replayed,
	}
	if interval, err := b.Interval(); err == nil {
		resp.EndTime = interval.End
	}
	return resp
}
