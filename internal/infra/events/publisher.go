package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// MessageWriter часть *kafka.Writer, которая нужна издателю
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// BookingPublisher общий вид Publisher и NopPublisher
type BookingPublisher interface {
	PublishBookingCreated(ctx context.Context, b *domain.Booking) error
	PublishBookingCancelled(ctx context.Context, b *domain.Booking) error
	Close() error
}

var (
	_ BookingPublisher = (*Publisher)(nil)
	_ BookingPublisher = NopPublisher{}
)

// Publisher публикует события бронирований в Kafka
// Ключ сообщения - ID комнаты, поэтому события одной комнаты попадают в одну партицию
type Publisher struct {
	writer MessageWriter
	now    func() time.Time
}

// NewPublisher создает издателя с kafka.Writer на указанный топик
// brokers - список через запятую
func NewPublisher(brokers string, topic string, writeTimeout time.Duration) *Publisher {
	return NewPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(SplitBrokers(brokers)...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: writeTimeout,
		RequiredAcks: kafka.RequireOne,
	})
}

// NewPublisherWithWriter создает издателя поверх произвольного writer
func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{writer: w, now: time.Now}
}

// PublishBookingCreated публикует booking.created
func (p *Publisher) PublishBookingCreated(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, NewBookingEvent(TypeBookingCreated, b, p.now()))
}

// PublishBookingCancelled публикует booking.cancelled
func (p *Publisher) PublishBookingCancelled(ctx context.Context, b *domain.Booking) error {
	return p.publish(ctx, NewBookingEvent(TypeBookingCancelled, b, p.now()))
}

func (p *Publisher) publish(ctx context.Context, event BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.RoomID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %s booking_id=%d: %v", ErrPublish, event.EventType, event.BookingID, err)
	}
	return nil
}

// Close закрывает writer
func (p *Publisher) Close() error {
	return p.writer.Close()
}

// SplitBrokers разбирает список брокеров через запятую
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NopPublisher используется, когда Kafka не настроена
type NopPublisher struct{}

func (NopPublisher) PublishBookingCreated(context.Context, *domain.Booking) error { return nil }

func (NopPublisher) PublishBookingCancelled(context.Context, *domain.Booking) error { return nil }

func (NopPublisher) Close() error { return nil }
