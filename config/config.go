package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env      string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port     string `env:"PORT" envDefault:"8080" validate:"required"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	// Storage selects the repository backend. memory keeps everything in
	// process and is meant for local runs only.
	Storage        string `env:"STORAGE"          envDefault:"postgres" validate:"oneof=postgres memory"`
	DatabaseURL    string `env:"DATABASE_URL"     validate:"required_if=Storage postgres"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	// JWTKey signs session tokens. It is handed to the token issuer once at startup.
	JWTKey       string `env:"JWT_KEY,required" validate:"required,min=32"`
	ResendAPIKey string `env:"RESEND_API_KEY"   validate:"required_if=Env production,required_if=Env staging"`
	ResendFrom   string `env:"RESEND_FROM"      validate:"required_if=Env production,required_if=Env staging"`
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
