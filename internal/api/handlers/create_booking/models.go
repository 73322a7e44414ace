package create_booking

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	suggestAlternatives "github.com/m04kA/SMC-RoomBookingService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// HeaderIdempotencyKey заголовок-синоним поля idempotencyKey
const HeaderIdempotencyKey = "Idempotency-Key"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID          int64   `json:"roomId"`
	BookingDate     string  `json:"bookingDate"` // "2026-10-20"
	StartTime       string  `json:"startTime"`   // "10:00"
	DurationMinutes int     `json:"durationMinutes"`
	Participants    int     `json:"participants"`
	Topic           string  `json:"topic"`
	PIC             string  `json:"pic"`
	MeetingType     string  `json:"meetingType,omitempty"`
	FoodOrder       string  `json:"foodOrder,omitempty"`
	Source          string  `json:"source,omitempty"`
	IdempotencyKey  *string `json:"idempotencyKey,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	RoomID          int64   `json:"roomId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	State           string  `json:"state"`
	Participants    int     `json:"participants"`
	Topic           string  `json:"topic"`
	PIC             string  `json:"pic"`
	MeetingType     string  `json:"meetingType"`
	FoodOrder       string  `json:"foodOrder"`
	Source          string  `json:"source"`
	IdempotencyKey  *string `json:"idempotencyKey,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ConflictResponse тело ответа 409
type ConflictResponse struct {
	Error            string               `json:"error"`
	ConflictingCount int                  `json:"conflictingCount"`
	Suggestions      *SuggestionsResponse `json:"suggestions"`
}

// SuggestionsResponse альтернативы для занятого интервала
type SuggestionsResponse struct {
	SameRoomSlot      *string `json:"sameRoomSlot"`
	AlternativeRoomID *int64  `json:"alternativeRoomId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// headerKey используется, если ключ не передан в теле
func (r *CreateBookingRequest) ToUseCaseRequest(headerKey string) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	key := r.IdempotencyKey
	if headerKey = strings.TrimSpace(headerKey); key == nil && headerKey != "" {
		key = &headerKey
	}

	return &createBooking.Request{
		RoomID:          r.RoomID,
		Date:            bookingDate,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Participants:    r.Participants,
		Topic:           r.Topic,
		PIC:             r.PIC,
		MeetingType:     r.MeetingType,
		FoodOrder:       r.FoodOrder,
		Source:          r.Source,
		IdempotencyKey:  key,
	}, nil
}

// ToSuggestRequest запрос на подбор альтернатив для того же интервала
func ToSuggestRequest(req *createBooking.Request) *suggestAlternatives.Request {
	capacity := req.Participants
	if capacity < 1 {
		capacity = 1
	}
	return &suggestAlternatives.Request{
		RoomID:           req.RoomID,
		Date:             req.Date,
		DesiredStart:     req.StartTime,
		DurationMinutes:  req.DurationMinutes,
		RequiredCapacity: capacity,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		RoomID:          resp.RoomID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		State:           resp.State,
		Participants:    resp.Participants,
		Topic:           resp.Topic,
		PIC:             resp.PIC,
		MeetingType:     resp.MeetingType,
		FoodOrder:       resp.FoodOrder,
		Source:          resp.Source,
		IdempotencyKey:  resp.IdempotencyKey,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromSuggestResponse конвертирует альтернативы в HTTP модель
func FromSuggestResponse(resp *suggestAlternatives.Response) *SuggestionsResponse {
	out := &SuggestionsResponse{AlternativeRoomID: resp.AlternativeRoomID}
	if resp.SameRoomSlot != nil {
		slot := resp.SameRoomSlot.String()
		out.SameRoomSlot = &slot
	}
	return out
}
