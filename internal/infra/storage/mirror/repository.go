package mirror

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// CollectionName коллекция зеркала бронирований, созданных ассистентом
const CollectionName = "assistant_bookings"

// Repository документное зеркало бронирований ассистента
// Источник истины - реляционное хранилище, зеркало заполняется после commit
type Repository struct {
	coll *mongo.Collection
}

// NewRepository создает репозиторий зеркала поверх базы MongoDB
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{coll: db.Collection(CollectionName)}
}

// EnsureIndexes создает индексы коллекции
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "booking_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "room_id", Value: 1}, {Key: "date", Value: 1}, {Key: "state", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEnsureIndexes, err)
	}
	return nil
}

// Upsert сохраняет бронирование (повторная запись того же booking_id обновляет документ)
func (r *Repository) Upsert(ctx context.Context, booking *domain.Booking) error {
	doc := toDocument(booking)

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"booking_id": doc.BookingID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: Upsert booking_id=%d: %v", ErrWrite, booking.ID, err)
	}
	return nil
}

// UpdateState меняет состояние зеркальной копии
func (r *Repository) UpdateState(ctx context.Context, bookingID int64, state domain.BookingState) error {
	_, err := r.coll.UpdateOne(ctx,
		bson.M{"booking_id": bookingID},
		bson.M{"$set": bson.M{"state": string(state), "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("%w: UpdateState booking_id=%d: %v", ErrWrite, bookingID, err)
	}
	return nil
}

// ListActiveByRoomAndDate возвращает BOOKED документы комнаты на дату
// Пересечения здесь не считаются, этим занимается проверка доступности
func (r *Repository) ListActiveByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	cursor, err := r.coll.Find(ctx,
		bson.M{
			"room_id": roomID,
			"date":    date.Format(domain.DateFormat),
			"state":   string(domain.StateBooked),
		},
		options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByRoomAndDate: %v", ErrRead, err)
	}
	defer cursor.Close(ctx)

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByRoomAndDate - decode: %v", ErrRead, err)
	}

	bookings := make([]*domain.Booking, 0, len(docs))
	for _, doc := range docs {
		b, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByRoomAndDate - booking_id=%d: %v", ErrRead, doc.BookingID, err)
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}
