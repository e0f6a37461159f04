package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Holidaze  HolidazeConfig  `toml:"holidaze"`
	Calendar  CalendarConfig  `toml:"calendar"`
	Selection SelectionConfig `toml:"selection"`
	Redis     RedisConfig     `toml:"redis"`
	Database  DatabaseConfig  `toml:"database"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"` // Пустая строка = только stdout
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HolidazeConfig удаленный API площадок и бронирований
type HolidazeConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

// CalendarConfig часовой пояс, в котором считаются календарные дни
type CalendarConfig struct {
	Timezone string `toml:"timezone"`
}

type SelectionConfig struct {
	TTL         int `toml:"ttl"`          // секунды жизни сессии выбора дат
	InFlightTTL int `toml:"inflight_ttl"` // секунды блокировки повторной отправки
}

type RedisConfig struct {
	Enabled  bool   `toml:"enabled"` // false = хранилище в памяти процесса
	URL      string `toml:"url"`
	PoolSize int    `toml:"pool_size"`
}

// DatabaseConfig PostgreSQL для журнала заявок
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// DSN строка подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// Load загружает конфигурацию из TOML-файла
// Перед этим подхватывает .env (если есть); секреты из окружения имеют приоритет над файлом
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Holidaze.URL == "" {
		return fmt.Errorf("%w: holidaze.url is required", ErrInvalidConfig)
	}
	if c.Holidaze.Timeout <= 0 {
		return fmt.Errorf("%w: holidaze.timeout must be positive", ErrInvalidConfig)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Selection.TTL <= 0 || c.Selection.InFlightTTL <= 0 {
		return fmt.Errorf("%w: selection ttl values must be positive", ErrInvalidConfig)
	}
	// Ключ отправки должен жить дольше самого медленного вызова Holidaze API
	if c.Selection.InFlightTTL <= c.Holidaze.Timeout {
		return fmt.Errorf("%w: selection.inflight_ttl (%ds) must exceed holidaze.timeout (%ds)",
			ErrInvalidConfig, c.Selection.InFlightTTL, c.Holidaze.Timeout)
	}
	if c.Redis.Enabled && c.Redis.URL == "" {
		return fmt.Errorf("%w: redis.url is required when redis is enabled", ErrInvalidConfig)
	}
	if c.Database.Enabled && (c.Database.Host == "" || c.Database.DBName == "") {
		return fmt.Errorf("%w: database host and dbname are required when journal is enabled", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "holidaze-gateway",
		},
		Holidaze: HolidazeConfig{
			URL:     "https://v2.api.noroff.dev",
			Timeout: 10,
		},
		Calendar: CalendarConfig{
			Timezone: "UTC",
		},
		Selection: SelectionConfig{
			TTL:         86400,
			InFlightTTL: 30,
		},
		Redis: RedisConfig{
			PoolSize: 20,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
	}
}

// applyEnv переопределяет секреты из переменных окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("HOLIDAZE_API_KEY"); v != "" {
		cfg.Holidaze.APIKey = v
	}
	if v := os.Getenv("HOLIDAZE_API_URL"); v != "" {
		cfg.Holidaze.URL = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
}
