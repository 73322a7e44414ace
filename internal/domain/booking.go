package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// BookingState represents the state of a booking
type BookingState string

const (
	StateBooked    BookingState = "BOOKED"
	StateCancelled BookingState = "CANCELLED"
)

// MeetingType тип встречи
type MeetingType string

const (
	MeetingInternal MeetingType = "internal"
	MeetingExternal MeetingType = "external"
)

// IsValid returns true for a known meeting type
func (t MeetingType) IsValid() bool {
	return t == MeetingInternal || t == MeetingExternal
}

// FoodOrder заказ еды на встречу: tidak (нет), ringan (лёгкий перекус), berat (полноценный обед)
type FoodOrder string

const (
	FoodNone  FoodOrder = "tidak"
	FoodLight FoodOrder = "ringan"
	FoodHeavy FoodOrder = "berat"
)

// IsValid returns true for a known food order
func (f FoodOrder) IsValid() bool {
	return f == FoodNone || f == FoodLight || f == FoodHeavy
}

// BookingSource канал, через который создано бронирование
type BookingSource string

const (
	SourceForm      BookingSource = "form"
	SourceAssistant BookingSource = "assistant"
)

// IsValid returns true for a known source
func (s BookingSource) IsValid() bool {
	return s == SourceForm || s == SourceAssistant
}

// Booking represents a meeting room reservation
type Booking struct {
	ID              int64
	RoomID          int64
	BookingDate     time.Time // дата без времени, локальная зона
	StartTime       types.TimeString
	DurationMinutes int
	State           BookingState

	// Описание встречи, в проверке пересечений не участвует
	Participants int
	Topic        string
	PIC          string // ответственный за встречу
	MeetingType  MeetingType
	FoodOrder    FoodOrder

	Source         BookingSource
	IdempotencyKey *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking takes part in conflict checks
func (b *Booking) IsActive() bool {
	return b.State == StateBooked
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.State == StateBooked
}

// Interval returns the occupied [start, end) range of the booking
func (b *Booking) Interval() (Interval, error) {
	return NewInterval(b.StartTime, b.DurationMinutes)
}

// RoomBookingsFilter фильтр бронирований комнаты на дату
type RoomBookingsFilter struct {
	RoomID           int64     // Обязательный параметр
	Date             time.Time // Обязательный параметр
	IncludeCancelled bool      // Включать ли отменённые бронирования
}
