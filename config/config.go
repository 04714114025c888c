// Package config loads runtime tuning from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the knobs that change how a run feels without changing
// game semantics: logging verbosity, the RNG seed, the winning score,
// and the pacing delay between narrated events.
type Config struct {
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	Seed        uint64        `env:"SEED" envDefault:"0"` // 0 = derive from the clock
	TargetScore int           `env:"TARGET_SCORE" envDefault:"10"`
	Pace        time.Duration `env:"PACE" envDefault:"1s"`
}

// Load parses configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
