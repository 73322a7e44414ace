package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// EnvPrefix префикс переменных окружения (ROOMBOOKING_DATABASE_PASSWORD и т.д.)
const EnvPrefix = "ROOMBOOKING"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Schedule ScheduleConfig `toml:"schedule"`
	Redis    RedisConfig    `toml:"redis"`
	Mongo    MongoConfig    `toml:"mongo"`
	Kafka    KafkaConfig    `toml:"kafka"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" split_words:"true"`
	ReadTimeout     int `toml:"read_timeout" split_words:"true"`
	WriteTimeout    int `toml:"write_timeout" split_words:"true"`
	IdleTimeout     int `toml:"idle_timeout" split_words:"true"`
	ShutdownTimeout int `toml:"shutdown_timeout" split_words:"true"`
}

// DatabaseConfig подключение к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns" split_words:"true"`
	MaxIdleConns    int    `toml:"max_idle_conns" split_words:"true"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" split_words:"true"` // секунды
	TxMaxAttempts   int    `toml:"tx_max_attempts" split_words:"true"`   // повторы serializable транзакций
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name" split_words:"true"`
}

// ScheduleConfig расписание по умолчанию, последний уровень иерархии
type ScheduleConfig struct {
	DayStart       string `toml:"day_start" split_words:"true"`
	DayEnd         string `toml:"day_end" split_words:"true"`
	StepMinutes    int    `toml:"step_minutes" split_words:"true"`
	MaxSearchSteps int    `toml:"max_search_steps" split_words:"true"`
}

// ToDomain конвертирует в доменную конфигурацию
func (s ScheduleConfig) ToDomain() (*domain.RoomScheduleConfig, error) {
	start, err := types.NewTimeStringFromString(s.DayStart)
	if err != nil {
		return nil, fmt.Errorf("schedule.day_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(s.DayEnd)
	if err != nil {
		return nil, fmt.Errorf("schedule.day_end: %w", err)
	}
	return &domain.RoomScheduleConfig{
		DayStart:       start,
		DayEnd:         end,
		StepMinutes:    s.StepMinutes,
		MaxSearchSteps: s.MaxSearchSteps,
	}, nil
}

// RedisConfig быстрый путь идемпотентности
type RedisConfig struct {
	Enabled        bool   `toml:"enabled"`
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	IdempotencyTTL int    `toml:"idempotency_ttl" split_words:"true"` // секунды
}

// MongoConfig зеркало бронирований ассистента
type MongoConfig struct {
	Enabled        bool   `toml:"enabled"`
	URI            string `toml:"uri"`
	Database       string `toml:"database"`
	ConnectTimeout int    `toml:"connect_timeout" split_words:"true"` // секунды
}

// KafkaConfig события бронирований
type KafkaConfig struct {
	Enabled      bool   `toml:"enabled"`
	Brokers      string `toml:"brokers"` // через запятую
	Topic        string `toml:"topic"`
	WriteTimeout int    `toml:"write_timeout" split_words:"true"` // секунды
}

// Default значения по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "room_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
			TxMaxAttempts:   3,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "room_booking",
		},
		Schedule: ScheduleConfig{
			DayStart:       domain.DefaultDayStart.String(),
			DayEnd:         domain.DefaultDayEnd.String(),
			StepMinutes:    domain.DefaultStepMinutes,
			MaxSearchSteps: domain.DefaultMaxSearchSteps,
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			IdempotencyTTL: 86400,
		},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "room_booking",
			ConnectTimeout: 5,
		},
		Kafka: KafkaConfig{
			Brokers:      "localhost:9092",
			Topic:        "room-bookings",
			WriteTimeout: 5,
		},
	}
}

// Load читает config.toml поверх значений по умолчанию и применяет переменные окружения
// Отсутствующий файл не ошибка: сервис можно настроить только окружением
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to parse %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет значения
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Database.TxMaxAttempts < 1 {
		errs = append(errs, errors.New("database.tx_max_attempts must be at least 1"))
	}

	schedule, err := c.Schedule.ToDomain()
	if err != nil {
		errs = append(errs, err)
	} else if !schedule.DayStart.IsBefore(schedule.DayEnd) {
		errs = append(errs, errors.New("schedule.day_start must be before schedule.day_end"))
	}
	if c.Schedule.StepMinutes < domain.MinStepMinutes || c.Schedule.StepMinutes > domain.MaxStepMinutes {
		errs = append(errs, fmt.Errorf("schedule.step_minutes must be in %d..%d",
			domain.MinStepMinutes, domain.MaxStepMinutes))
	}
	if c.Schedule.MaxSearchSteps < domain.MinSearchSteps || c.Schedule.MaxSearchSteps > domain.MaxSearchSteps {
		errs = append(errs, fmt.Errorf("schedule.max_search_steps must be in %d..%d",
			domain.MinSearchSteps, domain.MaxSearchSteps))
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		errs = append(errs, errors.New("redis.addr is required when redis is enabled"))
	}
	if c.Mongo.Enabled && (c.Mongo.URI == "" || c.Mongo.Database == "") {
		errs = append(errs, errors.New("mongo.uri and mongo.database are required when mongo is enabled"))
	}
	if c.Kafka.Enabled && (strings.TrimSpace(c.Kafka.Brokers) == "" || c.Kafka.Topic == "") {
		errs = append(errs, errors.New("kafka.brokers and kafka.topic are required when kafka is enabled"))
	}

	return errors.Join(errs...)
}
