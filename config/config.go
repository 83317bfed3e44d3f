// Package config loads host settings from HERO_* environment variables
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/hero-scene/parameter"
)

// Config holds host-level settings; the scene itself takes no configuration
type Config struct {
	// FPS is the frame loop tick rate
	FPS int `env:"HERO_FPS" envDefault:"30"`
	// Seed drives particle generation, 0 picks a time-based seed
	Seed uint64 `env:"HERO_SEED" envDefault:"0"`
	// Debug enables file logging
	Debug bool `env:"HERO_DEBUG" envDefault:"false"`
	// LogDir is where the debug log is written
	LogDir string `env:"HERO_LOG_DIR" envDefault:"logs"`
	// MetricsAddr serves /metrics when non-empty
	MetricsAddr string `env:"HERO_METRICS_ADDR"`
	// StreamAddr serves the websocket frame feed when non-empty
	StreamAddr string `env:"HERO_STREAM_ADDR"`
	// StreamFPS caps frames pushed to stream clients
	StreamFPS int `env:"HERO_STREAM_FPS" envDefault:"20"`
	// DeviceBudget caps bytes the resource pool may hand out, 0 for unlimited
	DeviceBudget int `env:"HERO_DEVICE_BUDGET" envDefault:"67108864"`
}

// Load parses the environment into a validated Config
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

// Validate rejects values the hosts cannot run with
func (c Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("config: fps %d out of range 1..240", c.FPS)
	}
	// Stream rate only matters when the feed is served
	if c.StreamAddr != "" && (c.StreamFPS <= 0 || c.StreamFPS > c.FPS) {
		return fmt.Errorf("config: stream fps %d out of range 1..%d", c.StreamFPS, c.FPS)
	}
	if c.DeviceBudget < 0 {
		return fmt.Errorf("config: negative device budget %d", c.DeviceBudget)
	}
	return nil
}

// FrameInterval converts FPS to a tick period
func (c Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return time.Second / parameter.FrameRate
	}
	return time.Second / time.Duration(c.FPS)
}
