package mirror

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// bookingDocument документ коллекции assistant_bookings
type bookingDocument struct {
	BookingID       int64     `bson:"booking_id"`
	RoomID          int64     `bson:"room_id"`
	Date            string    `bson:"date"` // YYYY-MM-DD
	StartTime       string    `bson:"start_time"`
	DurationMinutes int       `bson:"duration_minutes"`
	State           string    `bson:"state"`
	Participants    int       `bson:"participants"`
	Topic           string    `bson:"topic"`
	PIC             string    `bson:"pic"`
	MeetingType     string    `bson:"meeting_type"`
	FoodOrder       string    `bson:"food_order"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

func toDocument(b *domain.Booking) bookingDocument {
	return bookingDocument{
		BookingID:       b.ID,
		RoomID:          b.RoomID,
		Date:            b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		DurationMinutes: b.DurationMinutes,
		State:           string(b.State),
		Participants:    b.Participants,
		Topic:           b.Topic,
		PIC:             b.PIC,
		MeetingType:     string(b.MeetingType),
		FoodOrder:       string(b.FoodOrder),
		CreatedAt:       b.CreatedAt.UTC(),
		UpdatedAt:       b.UpdatedAt.UTC(),
	}
}

func (d bookingDocument) toDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, d.Date)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(d.StartTime)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:              d.BookingID,
		RoomID:          d.RoomID,
		BookingDate:     date,
		StartTime:       start,
		DurationMinutes: d.DurationMinutes,
		State:           domain.BookingState(d.State),
		Participants:    d.Participants,
		Topic:           d.Topic,
		PIC:             d.PIC,
		MeetingType:     domain.MeetingType(d.MeetingType),
		FoodOrder:       domain.FoodOrder(d.FoodOrder),
		Source:          domain.SourceAssistant,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}, nil
}
