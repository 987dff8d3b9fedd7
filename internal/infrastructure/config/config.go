package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
}

type DatabaseConfig struct {
	DSN          string        `env:"DATABASE_URL, default=postgres://localhost:5432/casedesk?sslmode=disable"`
	MaxOpenConns int           `env:"DB_MAX_OPEN_CONNS, default=20"`
	MaxIdleConns int           `env:"DB_MAX_IDLE_CONNS, default=5"`
	WaitAttempts int           `env:"DB_WAIT_ATTEMPTS,  default=10"`
	WaitBackoff  time.Duration `env:"DB_WAIT_BACKOFF,   default=2s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	return &cfg
}
