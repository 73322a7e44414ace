package idempotency

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idem:booking:"

// KeyStore общий вид Store и NopStore
type KeyStore interface {
	Get(ctx context.Context, key string) (int64, bool, error)
	Remember(ctx context.Context, key string, bookingID int64) error
}

var (
	_ KeyStore = (*Store)(nil)
	_ KeyStore = NopStore{}
)

// Store быстрый путь для ключей идемпотентности: ключ -> ID бронирования
// Долговечный источник истины - UNIQUE колонка bookings.idempotency_key
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore создает хранилище ключей идемпотентности
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

func (s *Store) key(k string) string { return keyPrefix + k }

// Get возвращает ID бронирования для ключа, found=false если ключ неизвестен
func (s *Store) Get(ctx context.Context, key string) (int64, bool, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: Get: %v", ErrCache, err)
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: Get - corrupted value %q: %v", ErrCache, v, err)
	}
	return id, true, nil
}

// Remember запоминает ID бронирования для ключа, если ключ ещё не занят
func (s *Store) Remember(ctx context.Context, key string, bookingID int64) error {
	if err := s.rdb.SetNX(ctx, s.key(key), bookingID, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Remember: %v", ErrCache, err)
	}
	return nil
}

// NopStore используется, когда Redis не настроен: всегда промах
type NopStore struct{}

func (NopStore) Get(context.Context, string) (int64, bool, error) { return 0, false, nil }

func (NopStore) Remember(context.Context, string, int64) error { return nil }
