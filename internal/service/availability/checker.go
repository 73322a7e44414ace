package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Result результат проверки интервала
type Result struct {
	Available        bool
	ConflictingCount int
}

// Checker единственное место, где считаются пересечения интервалов
// Хранилища только отдают бронирования комнаты на дату
type Checker struct {
	primary BookingSource
	mirrors []BookingSource
	metrics Metrics
	logger  Logger
}

// Option настройка Checker
type Option func(*Checker)

// WithMirror добавляет вторичный источник (ошибки зеркала не прерывают проверку)
func WithMirror(src BookingSource) Option {
	return func(c *Checker) {
		if src != nil {
			c.mirrors = append(c.mirrors, src)
		}
	}
}

// WithMetrics подключает бизнес-метрики
func WithMetrics(m Metrics) Option {
	return func(c *Checker) {
		if m != nil {
			c.metrics = m
		}
	}
}

// NewChecker создает проверку доступности поверх основного хранилища
func NewChecker(primary BookingSource, logger Logger, opts ...Option) *Checker {
	c := &Checker{
		primary: primary,
		metrics: nopMetrics{},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListActive собирает BOOKED бронирования комнаты на дату из всех источников
// Записи зеркала с ID, известным основному хранилищу, пропускаются: состояние в основном хранилище главнее
func (c *Checker) ListActive(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	if len(c.mirrors) == 0 {
		bookings, err := c.primary.ListActiveByRoomAndDate(ctx, roomID, date)
		if err != nil {
			return nil, c.storageError(roomID, date, err)
		}
		return bookings, nil
	}

	known, err := c.listPrimaryWithCancelled(ctx, roomID, date)
	if err != nil {
		return nil, c.storageError(roomID, date, err)
	}

	seen := make(map[int64]struct{}, len(known))
	bookings := make([]*domain.Booking, 0, len(known))
	for _, b := range known {
		seen[b.ID] = struct{}{}
		if b.IsActive() {
			bookings = append(bookings, b)
		}
	}

	for _, mirror := range c.mirrors {
		extra, err := mirror.ListActiveByRoomAndDate(ctx, roomID, date)
		if err != nil {
			c.logger.Warn("Availability: mirror lookup failed for room=%d date=%s: %v",
				roomID, date.Format(domain.DateFormat), err)
			continue
		}
		for _, b := range extra {
			if b.ID != 0 {
				if _, ok := seen[b.ID]; ok {
					continue
				}
				seen[b.ID] = struct{}{}
			}
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

// listPrimaryWithCancelled читает из основного хранилища и отменённые записи, если оно это умеет
func (c *Checker) listPrimaryWithCancelled(ctx context.Context, roomID int64, date time.Time) ([]*domain.Booking, error) {
	if full, ok := c.primary.(FullBookingSource); ok {
		return full.ListByRoomAndDate(ctx, domain.RoomBookingsFilter{
			RoomID:           roomID,
			Date:             date,
			IncludeCancelled: true,
		})
	}
	return c.primary.ListActiveByRoomAndDate(ctx, roomID, date)
}

func (c *Checker) storageError(roomID int64, date time.Time, err error) error {
	return fmt.Errorf("%w: room=%d date=%s: %w", ErrStorage, roomID, date.Format(domain.DateFormat), err)
}

// CountConflicts считает активные бронирования, строго пересекающиеся с candidate
func (c *Checker) CountConflicts(candidate domain.Interval, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		interval, err := b.Interval()
		if err != nil {
			c.logger.Warn("Availability: skipping booking id=%d with invalid interval: %v", b.ID, err)
			continue
		}
		if candidate.Overlaps(interval) {
			count++
		}
	}
	return count
}

// Check проверяет интервал для комнаты на дату
// Занятость - нормальный результат, ошибка возвращается только при сбое хранилища
func (c *Checker) Check(ctx context.Context, roomID int64, date time.Time, candidate domain.Interval) (Result, error) {
	bookings, err := c.ListActive(ctx, roomID, date)
	if err != nil {
		return Result{}, err
	}

	conflicts := c.CountConflicts(candidate, bookings)
	c.metrics.IncAvailabilityCheck(conflicts == 0)

	return Result{
		Available:        conflicts == 0,
		ConflictingCount: conflicts,
	}, nil
}
