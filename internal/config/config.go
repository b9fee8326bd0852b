package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the environment-derived runtime configuration. Command-line
// flags override individual fields after Load.
type Config struct {
	DBPath        string        `env:"LEXIZ_DB"`
	LogLevel      string        `env:"LEXIZ_LOG_LEVEL" envDefault:"info"`
	LogFile       string        `env:"LEXIZ_LOG_FILE"`
	MetricsFile   string        `env:"LEXIZ_METRICS_FILE"`
	CheckSchedule string        `env:"LEXIZ_CHECK_SCHEDULE" envDefault:"@every 30s"`
	PollInterval  time.Duration `env:"LEXIZ_POLL_INTERVAL" envDefault:"1s"`
	ToastDuration time.Duration `env:"LEXIZ_TOAST_DURATION" envDefault:"4s"`
}

// Load parses Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects durations that would stall the notification loop.
func (c Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("LEXIZ_POLL_INTERVAL must be positive, got %s", c.PollInterval)
	}
	if c.ToastDuration <= 0 {
		return fmt.Errorf("LEXIZ_TOAST_DURATION must be positive, got %s", c.ToastDuration)
	}
	return nil
}
