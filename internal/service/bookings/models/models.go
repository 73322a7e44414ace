package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// GetRoomBookingsRequest запрос на получение бронирований комнаты за день
type GetRoomBookingsRequest struct {
	RoomID           int64     `json:"roomId"`
	Date             time.Time `json:"date"`
	IncludeCancelled bool      `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRoomBookingsRequest) ToDomainFilter() domain.RoomBookingsFilter {
	return domain.RoomBookingsFilter{
		RoomID:           r.RoomID,
		Date:             r.Date,
		IncludeCancelled: r.IncludeCancelled,
	}
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64  `json:"id"`
	RoomID          int64  `json:"roomId"`
	BookingDate     string `json:"bookingDate"` // "2026-10-20"
	StartTime       string `json:"startTime"`   // "10:00"
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	State           string `json:"state"`

	Participants int    `json:"participants"`
	Topic        string `json:"topic"`
	PIC          string `json:"pic"`
	MeetingType  string `json:"meetingType"`
	FoodOrder    string `json:"foodOrder"`

	Source         string  `json:"source"`
	IdempotencyKey *string `json:"idempotencyKey,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		RoomID:          b.RoomID,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
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
	}

	// Конец интервала считаем только для корректных записей
	if interval, err := b.Interval(); err == nil {
		resp.EndTime = interval.End.String()
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
