package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Port    string
	GinMode string

	DBDriver        string
	DBLogLevel      string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	LogLevel  string
	LogFormat string

	CorsOrigins []string

	RabbitMQURL      string
	RabbitMQExchange string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration from the environment. A .env file is
// expected to be loaded by the caller before this runs.
func Load() (*Config, error) {
	cfg := &Config{
		Port:    envOrDefault("PORT", "8080"),
		GinMode: envOrDefault("GIN_MODE", "debug"),

		DBDriver:        strings.ToLower(envOrDefault("DB_DRIVER", DriverMySQL)),
		DBLogLevel:      strings.ToLower(envOrDefault("DB_LOG_LEVEL", "warn")),
		SQLitePath:      envOrDefault("SQLITE_PATH", "rental.db"),
		MaxOpenConns:    envInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    envInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: envDuration("DB_CONN_MAX_LIFETIME", 30*time.Minute),

		LogLevel:  strings.ToLower(envOrDefault("LOG_LEVEL", "info")),
		LogFormat: strings.ToLower(envOrDefault("LOG_FORMAT", "text")),

		CorsOrigins: parseCorsOrigins(os.Getenv("CORS_ORIGINS")),

		RabbitMQURL:      envOrDefault("RABBITMQ_URL", ""),
		RabbitMQExchange: envOrDefault("RABBITMQ_EXCHANGE", "rental.events"),

		ReadTimeout:     envDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    envDuration("WRITE_TIMEOUT", 20*time.Second),
		IdleTimeout:     envDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got: %s", cfg.Port))
	}

	switch cfg.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		problems = append(problems, fmt.Sprintf("DB_DRIVER must be one of mysql, postgres, sqlite, got: %s", cfg.DBDriver))
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("LOG_FORMAT must be text or json, got: %s", cfg.LogFormat))
	}

	if cfg.MaxOpenConns < 1 {
		problems = append(problems, fmt.Sprintf("DB_MAX_OPEN_CONNS must be positive, got: %d", cfg.MaxOpenConns))
	}
	if cfg.MaxIdleConns < 0 {
		problems = append(problems, fmt.Sprintf("DB_MAX_IDLE_CONNS cannot be negative, got: %d", cfg.MaxIdleConns))
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 || cfg.IdleTimeout <= 0 || cfg.ShutdownTimeout <= 0 {
		problems = append(problems, "server timeouts must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return def
	}
	return d
}

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
