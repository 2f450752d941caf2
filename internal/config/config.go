package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Payments PaymentsConfig `toml:"payments"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig параметры HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// DatabaseConfig параметры подключения к PostgreSQL
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
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// RedisConfig параметры Redis (реестр обработанных платежных событий)
type RedisConfig struct {
	Addr           string `toml:"addr"`
	Password       string `toml:"password"`
	DB             int    `toml:"db"`
	EventTTLHours  int    `toml:"event_ttl_hours"`
	DialTimeoutSec int    `toml:"dial_timeout"`
}

// EventTTL время хранения отметки об обработанном событии
func (c RedisConfig) EventTTL() time.Duration {
	return time.Duration(c.EventTTLHours) * time.Hour
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// PaymentsConfig параметры платежного провайдера (Stripe)
// Отсутствие ключей не является ошибкой загрузки:
// платежные операции вернут ошибку конфигурации при вызове
type PaymentsConfig struct {
	SecretKey     string `toml:"secret_key"`
	WebhookSecret string `toml:"webhook_secret"`
	Currency      string `toml:"currency"`
	SuccessURL    string `toml:"success_url"`
	CancelURL     string `toml:"cancel_url"`
	Timeout       int    `toml:"timeout"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	// Timezone локация, в которой считаются границы дня и время слотов
	Timezone string `toml:"timezone"`
	// PopularShopsLimit количество барбершопов в подборке "популярные"
	PopularShopsLimit int `toml:"popular_shops_limit"`
}

// Location загружает локацию бронирования
func (c BookingConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// envOverrides значения из окружения, перекрывающие файл конфигурации
type envOverrides struct {
	HTTPPort            int    `envconfig:"HTTP_PORT"`
	LogLevel            string `envconfig:"LOG_LEVEL"`
	DBHost              string `envconfig:"DB_HOST"`
	DBPort              int    `envconfig:"DB_PORT"`
	DBUser              string `envconfig:"DB_USER"`
	DBPassword          string `envconfig:"DB_PASSWORD"`
	DBName              string `envconfig:"DB_NAME"`
	RedisAddr           string `envconfig:"REDIS_ADDR"`
	RedisPassword       string `envconfig:"REDIS_PASSWORD"`
	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
	AppURL              string `envconfig:"APP_URL"`
}

// Load читает конфигурацию из TOML файла и накладывает переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to stat %s: %w", path, err)
	}

	var env envOverrides
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("config: failed to read environment: %w", err)
	}
	cfg.apply(env)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Payments.Currency == "" {
		return fmt.Errorf("%w: payments.currency is required", ErrInvalidConfig)
	}
	if c.Booking.PopularShopsLimit <= 0 {
		return fmt.Errorf("%w: booking.popular_shops_limit must be positive", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) apply(env envOverrides) {
	if env.HTTPPort != 0 {
		c.Server.HTTPPort = env.HTTPPort
	}
	if env.LogLevel != "" {
		c.Logs.Level = env.LogLevel
	}
	if env.DBHost != "" {
		c.Database.Host = env.DBHost
	}
	if env.DBPort != 0 {
		c.Database.Port = env.DBPort
	}
	if env.DBUser != "" {
		c.Database.User = env.DBUser
	}
	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.DBName != "" {
		c.Database.DBName = env.DBName
	}
	if env.RedisAddr != "" {
		c.Redis.Addr = env.RedisAddr
	}
	if env.RedisPassword != "" {
		c.Redis.Password = env.RedisPassword
	}
	if env.StripeSecretKey != "" {
		c.Payments.SecretKey = env.StripeSecretKey
	}
	if env.StripeWebhookSecret != "" {
		c.Payments.WebhookSecret = env.StripeWebhookSecret
	}
	if env.AppURL != "" {
		c.Payments.SuccessURL = env.AppURL
		c.Payments.CancelURL = env.AppURL
	}
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "barber_booking",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr:           "localhost:6379",
			EventTTLHours:  72,
			DialTimeoutSec: 5,
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "smc_barber_booking",
		},
		Payments: PaymentsConfig{
			Currency: "brl",
			Timeout:  30,
		},
		Booking: BookingConfig{
			Timezone:          "UTC",
			PopularShopsLimit: 10,
		},
	}
}
