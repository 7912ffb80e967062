// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/guessanumber/internal/engine"
	"github.com/samdwyer/guessanumber/internal/telemetry"
)

// Config holds game configuration options.
type Config struct {
	// Policy is the guess selection policy: "bisect" or "jitter".
	Policy engine.Policy `env:"GUESS_POLICY" envDefault:"bisect"`

	// Seed for the jitter policy's random source.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"GUESS_SEED" envDefault:"0"`

	LogLevel string `env:"GUESS_LOG_LEVEL" envDefault:"info"`

	// LogFile receives logs during interactive play, since the terminal is
	// owned by the screen. Empty discards them.
	LogFile string `env:"GUESS_LOG_FILE"`

	Telemetry         bool   `env:"GUESS_TELEMETRY" envDefault:"false"`
	TelemetryEndpoint string `env:"GUESS_OTLP_TRACES_URL" envDefault:"https://api.honeycomb.io/v1/traces"`
	HoneycombAPIKey   string `env:"HONEYCOMB_GUESSANUMBER_API_KEY"`
	HoneycombDataset  string `env:"HONEYCOMB_GUESSANUMBER_DATASET" envDefault:"guessanumber"`
}

// Load parses Config from the environment. An unknown policy name fails here.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// TelemetryOptions returns the exporter settings for telemetry.Setup.
func (c Config) TelemetryOptions() telemetry.Options {
	return telemetry.Options{
		EndpointURL: c.TelemetryEndpoint,
		APIKey:      c.HoneycombAPIKey,
		Dataset:     c.HoneycombDataset,
		Policy:      c.Policy.String(),
	}
}
