package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	checker      AvailabilityChecker
	txManager    TransactionManager
	idempotency  IdempotencyStore
	mirror       MirrorRepository
	publisher    EventPublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// Option настройка UseCase
type Option func(*UseCase)

// WithIdempotencyStore подключает Redis как быстрый путь для ключей идемпотентности
func WithIdempotencyStore(store IdempotencyStore) Option {
	return func(uc *UseCase) { uc.idempotency = store }
}

// WithMirror подключает документное зеркало для бронирований ассистента
func WithMirror(mirror MirrorRepository) Option {
	return func(uc *UseCase) { uc.mirror = mirror }
}

// WithPublisher подключает публикацию событий
func WithPublisher(publisher EventPublisher) Option {
	return func(uc *UseCase) { uc.publisher = publisher }
}

// WithMetrics подключает бизнес-метрики
func WithMetrics(metrics Metrics) Option {
	return func(uc *UseCase) { uc.metrics = metrics }
}

// WithTimeProvider подменяет источник текущего времени
func WithTimeProvider(tp TimeProvider) Option {
	return func(uc *UseCase) { uc.timeProvider = tp }
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	checker AvailabilityChecker,
	txManager TransactionManager,
	logger Logger,
	opts ...Option,
) *UseCase {
	uc := &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		checker:      checker,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
// Гарантию непересечения дают exclusion constraint и повтор при 40001:
// снимок SERIALIZABLE берётся до ожидания advisory-блокировки, поэтому она лишь упорядочивает конкурентов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, date=%s, time=%s, duration=%d, participants=%d, source=%s",
		req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes, req.Participants, req.Source)

	// 1. Валидация входных данных
	applyDefaults(req)
	interval, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Повтор уже выполненного запроса отдаёт сохранённую запись, даже если дата прошла
	if req.IdempotencyKey != nil {
		if replay := uc.lookupReplay(ctx, *req.IdempotencyKey); replay != nil {
			uc.logger.Info("CreateBooking: replaying booking id=%d for idempotency key", replay.ID)
			uc.remember(ctx, req, replay)
			return toResponse(replay, true), nil
		}
	}

	// 3. Дата не должна быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	var (
		result   *domain.Booking
		replayed bool
	)

	// 4. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result, replayed = nil, false

		// 4.1. Очередь конкурентов за (комната, дата); ожидавший видит старый снимок
		// и упирается в exclusion constraint или 40001 с повтором транзакции
		if err := uc.bookingRepo.LockRoomDay(txCtx, req.RoomID, req.Date); err != nil {
			uc.logger.Error("CreateBooking: failed to lock room=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to lock room day: %w", ErrInternal, err)
		}

		// 4.2. Долговечная проверка ключа идемпотентности
		if req.IdempotencyKey != nil {
			existing, err := uc.bookingRepo.GetByIdempotencyKey(txCtx, *req.IdempotencyKey)
			if err == nil {
				result, replayed = existing, true
				return nil
			}
			if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Error("CreateBooking: failed to look up idempotency key: %v", err)
				return fmt.Errorf("%w: failed to look up idempotency key: %w", ErrInternal, err)
			}
		}

		// 4.3. Комната (FOR SHARE внутри транзакции)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %w", ErrInternal, err)
		}

		if !room.IsAvailable {
			uc.logger.Warn("CreateBooking: room id=%d is not available", req.RoomID)
			return ErrRoomUnavailable
		}

		if req.Participants > room.Capacity {
			uc.logger.Warn("CreateBooking: %d participants exceed capacity %d of room id=%d",
				req.Participants, room.Capacity, req.RoomID)
			return fmt.Errorf("%w: %d > %d", ErrCapacityExceeded, req.Participants, room.Capacity)
		}

		// 4.4. Пересечения через единую проверку доступности (executor транзакции из контекста)
		check, err := uc.checker.Check(txCtx, req.RoomID, req.Date, interval)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}

		if !check.Available {
			uc.logger.Warn("CreateBooking: interval %s in room=%d overlaps %d booking(s)",
				interval, req.RoomID, check.ConflictingCount)
			return fmt.Errorf("%w: %w", ErrSlotNotAvailable, &domain.ConflictError{ConflictingCount: check.ConflictingCount})
		}

		// 4.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, toDomainBooking(req))
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				uc.logger.Warn("CreateBooking: exclusion constraint rejected interval %s in room=%d", interval, req.RoomID)
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, &domain.ConflictError{ConflictingCount: 1})
			case errors.Is(err, bookingRepo.ErrDuplicateIdempotencyKey):
				return errDuplicateKey
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return uc.handleTxError(ctx, req, err)
	}

	if replayed {
		uc.logger.Info("CreateBooking: idempotency key already used by booking id=%d", result.ID)
		uc.remember(ctx, req, result)
		return toResponse(result, true), nil
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Побочные эффекты после commit
	uc.afterCreate(ctx, req, result)

	return toResponse(result, false), nil
}

// handleTxError приводит ошибку транзакции к одному из видов ошибок ядра
func (uc *UseCase) handleTxError(ctx context.Context, req *Request, err error) (*Response, error) {
	switch {
	case errors.Is(err, errDuplicateKey):
		// Параллельный запрос с тем же ключом успел закоммитить раньше
		existing, getErr := uc.bookingRepo.GetByIdempotencyKey(ctx, *req.IdempotencyKey)
		if getErr != nil {
			uc.logger.Error("CreateBooking: failed to load booking for duplicate key: %v", getErr)
			return nil, fmt.Errorf("%w: failed to load booking for duplicate key: %v", ErrInternal, getErr)
		}
		uc.logger.Info("CreateBooking: concurrent request created booking id=%d for the same key", existing.ID)
		uc.remember(ctx, req, existing)
		return toResponse(existing, true), nil

	case errors.Is(err, domain.ErrConflict):
		if uc.metrics != nil {
			uc.metrics.IncBookingConflict()
		}
		return nil, err

	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrStorageUnavailable):
		return nil, err
	}

	uc.logger.Error("CreateBooking: transaction failed: %v", err)
	return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
}

// lookupReplay ищет бронирование по ключу сначала в Redis, затем в БД
// Ошибки означают промах: ключ ещё раз проверяется внутри транзакции
func (uc *UseCase) lookupReplay(ctx context.Context, key string) *domain.Booking {
	if cached := uc.lookupCached(ctx, key); cached != nil {
		return cached
	}

	existing, err := uc.bookingRepo.GetByIdempotencyKey(ctx, key)
	if err != nil {
		if !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CreateBooking: idempotency key lookup failed before transaction: %v", err)
		}
		return nil
	}
	return existing
}

// lookupCached проверяет ключ в Redis; любые ошибки кэша означают промах
func (uc *UseCase) lookupCached(ctx context.Context, key string) *domain.Booking {
	if uc.idempotency == nil {
		return nil
	}

	bookingID, found, err := uc.idempotency.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("CreateBooking: idempotency cache unavailable: %v", err)
		return nil
	}
	if !found {
		return nil
	}

	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		uc.logger.Warn("CreateBooking: cached booking id=%d could not be loaded: %v", bookingID, err)
		return nil
	}
	return booking
}

func (uc *UseCase) remember(ctx context.Context, req *Request, b *domain.Booking) {
	if uc.idempotency == nil || req.IdempotencyKey == nil {
		return
	}
	if err := uc.idempotency.Remember(ctx, *req.IdempotencyKey, b.ID); err != nil {
		uc.logger.Warn("CreateBooking: failed to cache idempotency key for booking id=%d: %v", b.ID, err)
	}
}

// afterCreate кэш ключа, зеркало и событие; ошибки только логируются
func (uc *UseCase) afterCreate(ctx context.Context, req *Request, b *domain.Booking) {
	uc.remember(ctx, req, b)

	if uc.mirror != nil && b.Source == domain.SourceAssistant {
		if err := uc.mirror.Upsert(ctx, b); err != nil {
			uc.logger.Warn("CreateBooking: failed to mirror booking id=%d: %v", b.ID, err)
		}
	}

	if uc.publisher != nil {
		if err := uc.publisher.PublishBookingCreated(ctx, b); err != nil {
			uc.logger.Warn("CreateBooking: failed to publish event for booking id=%d: %v", b.ID, err)
		}
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingCreated(string(b.Source))
	}
}
