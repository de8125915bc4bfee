package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/robfig/cron/v3"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Источники записей о бронированиях
const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

var (
	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Source   SourceConfig   `toml:"source"`
	VenueAPI VenueAPIConfig `toml:"venue_api"`
	Database DatabaseConfig `toml:"database"`
	Booking  BookingConfig  `toml:"booking"`
	Sessions SessionsConfig `toml:"sessions"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SourceConfig откуда берутся бронирования и события: http (backend API) или postgres
type SourceConfig struct {
	Kind string `toml:"kind"`
}

// VenueAPIConfig настройки backend API заведения
type VenueAPIConfig struct {
	URL            string `toml:"url"`
	Timeout        int    `toml:"timeout"`
	BookingPath    string `toml:"booking_path"`
	EventPath      string `toml:"event_path"`
	DateStartParam string `toml:"date_start_param"`
	DateEndParam   string `toml:"date_end_param"`
	RepeatParam    string `toml:"repeat_param"`
	NotRepeatParam string `toml:"not_repeat_param"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// BookingConfig настройки окна бронирования и расписания обновления
type BookingConfig struct {
	WindowDays     int    `toml:"window_days"`
	RefreshCron    string `toml:"refresh_cron"`
	RefreshOnStart bool   `toml:"refresh_on_start"`
	RefreshTimeout int    `toml:"refresh_timeout"`
}

// SessionsConfig настройки сессий выбора столика
type SessionsConfig struct {
	MaxSessions int `toml:"max_sessions"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "smc_table_booking",
		},
		Source: SourceConfig{
			Kind: SourceHTTP,
		},
		VenueAPI: VenueAPIConfig{
			URL:            "http://localhost:3131",
			Timeout:        5,
			BookingPath:    "booking",
			EventPath:      "event",
			DateStartParam: "date_gte",
			DateEndParam:   "date_lte",
			RepeatParam:    "repeat_ne=false",
			NotRepeatParam: "repeat=false",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Booking: BookingConfig{
			WindowDays:     domain.DefaultWindowDays,
			RefreshCron:    domain.DefaultRefreshCron,
			RefreshOnStart: true,
			RefreshTimeout: 15,
		},
		Sessions: SessionsConfig{
			MaxSessions: domain.DefaultMaxSessions,
		},
	}
}

// Load читает TOML файл поверх значений по умолчанию и валидирует результат
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах)
func Parse(data string) (*Config, error) {
	cfg := Default()

	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	switch c.Source.Kind {
	case SourceHTTP:
		if _, err := url.ParseRequestURI(c.VenueAPI.URL); err != nil {
			return fmt.Errorf("%w: venue_api.url: %v", ErrInvalidConfig, err)
		}
		if c.VenueAPI.Timeout <= 0 {
			return fmt.Errorf("%w: venue_api.timeout must be positive", ErrInvalidConfig)
		}
	case SourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: source.kind must be %q or %q", ErrInvalidConfig, SourceHTTP, SourcePostgres)
	}

	if c.Booking.WindowDays < 0 || c.Booking.WindowDays > domain.MaxWindowDays {
		return fmt.Errorf("%w: booking.window_days must be in 0..%d", ErrInvalidConfig, domain.MaxWindowDays)
	}

	if c.Booking.RefreshCron != "" {
		if _, err := cron.ParseStandard(c.Booking.RefreshCron); err != nil {
			return fmt.Errorf("%w: booking.refresh_cron: %v", ErrInvalidConfig, err)
		}
	}

	if c.Booking.RefreshTimeout <= 0 {
		return fmt.Errorf("%w: booking.refresh_timeout must be positive", ErrInvalidConfig)
	}

	if c.Sessions.MaxSessions <= 0 {
		return fmt.Errorf("%w: sessions.max_sessions must be positive", ErrInvalidConfig)
	}

	return nil
}
