package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	cancelBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_booking"
	getRoomBookingsHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_room_bookings"
	getRoomConfigHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/get_room_config"
	suggestAlternativesHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/suggest_alternatives"
	updateRoomConfigHandler "github.com/m04kA/SMC-RoomBookingService/internal/api/handlers/update_room_config"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/config"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/cache/idempotency"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	configRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/config"
	mirrorRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/mirror"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RoomBookingService/internal/service/bookings"
	configService "github.com/m04kA/SMC-RoomBookingService/internal/service/config"
	checkAvailabilityUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_available_slots"
	suggestAlternativesUC "github.com/m04kA/SMC-RoomBookingService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
	"github.com/m04kA/SMC-RoomBookingService/pkg/metrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-RoomBookingService...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка просто пробрасывает вызовы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Репозитории PostgreSQL
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	roomRepository := roomRepo.NewRepository(wrappedDB)
	configRepository := configRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB, txmanager.WithMaxAttempts(cfg.Database.TxMaxAttempts))

	// Опциональные зависимости: Redis, MongoDB, Kafka
	createOpts := []createBookingUC.Option{createBookingUC.WithMetrics(metricsCollector)}
	checkerOpts := []availability.Option{availability.WithMetrics(metricsCollector)}

	var (
		bookingMirror    bookingsService.MirrorRepository
		idempotencyStore idempotency.KeyStore    = idempotency.NopStore{}
		eventPublisher   events.BookingPublisher = events.NopPublisher{}
	)

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unavailable at %s, idempotency falls back to database: %v", cfg.Redis.Addr, err)
		}
		idempotencyStore = idempotency.NewStore(rdb, time.Duration(cfg.Redis.IdempotencyTTL)*time.Second)
		log.Info("Redis idempotency store enabled (addr=%s)", cfg.Redis.Addr)
	}

	if cfg.Mongo.Enabled {
		connectCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
		cancel()
		if err != nil {
			log.Fatal("Failed to connect to MongoDB: %v", err)
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("Failed to disconnect MongoDB: %v", err)
			}
		}()

		mirror := mirrorRepo.NewRepository(client.Database(cfg.Mongo.Database))
		indexCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(cfg.Mongo.ConnectTimeout)*time.Second)
		if err := mirror.EnsureIndexes(indexCtx); err != nil {
			log.Warn("Failed to ensure MongoDB indexes: %v", err)
		}
		cancel()

		bookingMirror = mirror
		createOpts = append(createOpts, createBookingUC.WithMirror(mirror))
		checkerOpts = append(checkerOpts, availability.WithMirror(mirror))
		log.Info("MongoDB mirror enabled (db=%s)", cfg.Mongo.Database)
	}

	if cfg.Kafka.Enabled {
		publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.WriteTimeout)*time.Second)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Error("Failed to close Kafka publisher: %v", err)
			}
		}()

		eventPublisher = publisher
		log.Info("Kafka publisher enabled (brokers=%s, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	createOpts = append(createOpts,
		createBookingUC.WithIdempotencyStore(idempotencyStore),
		createBookingUC.WithPublisher(eventPublisher),
	)

	// Инициализируем сервисы
	scheduleDefaults, err := cfg.Schedule.ToDomain()
	if err != nil {
		log.Fatal("Invalid schedule defaults: %v", err)
	}
	configSvc := configService.NewService(configRepository, roomRepository, scheduleDefaults, log)
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, bookingMirror, eventPublisher, log)
	checker := availability.NewChecker(bookingRepository, log, checkerOpts...)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(roomRepository, checker, log)
	suggestAlternativesUseCase := suggestAlternativesUC.NewUseCase(roomRepository, configSvc, checker, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(roomRepository, configSvc, checker, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		roomRepository,
		checker,
		txMgr,
		log,
		createOpts...,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	suggestAlternatives := suggestAlternativesHandler.NewHandler(suggestAlternativesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, suggestAlternativesUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getRoomBookings := getRoomBookingsHandler.NewHandler(bookingSvc, log)
	getRoomConfig := getRoomConfigHandler.NewHandler(configSvc, log)
	updateRoomConfig := updateRoomConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Комнаты ---
	api.HandleFunc("/rooms/{roomId}/availability", checkAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/suggestions", suggestAlternatives.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/bookings", getRoomBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/config", getRoomConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/config", updateRoomConfig.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
