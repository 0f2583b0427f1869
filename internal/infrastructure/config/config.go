package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Storage
	StoreBackend string `env:"STORE_BACKEND" envDefault:"memory"` // memory | redis
	RedisURL     string `env:"REDIS_URL"     envDefault:"redis://localhost:6379"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Authentication
	JWTSecret     string        `env:"JWT_SECRET"     envDefault:"chapapay-dev-secret"`
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`

	// Mock backend behavior
	SeedRandom int64         `env:"SEED_RANDOM" envDefault:"20240901"`
	LatencyMin time.Duration `env:"LATENCY_MIN" envDefault:"200ms"`
	LatencyMax time.Duration `env:"LATENCY_MAX" envDefault:"500ms"`

	// Rate limiting
	RateLimitPerSecond float64 `env:"RATE_LIMIT_PER_SECOND" envDefault:"50"`
	RateLimitBurst     int     `env:"RATE_LIMIT_BURST"      envDefault:"100"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
