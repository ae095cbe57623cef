package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PresetPath string // .hcl, .yaml or .yml; empty means every setting is prompted

	LogLevel  string `env:"MATHQUIZ_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"MATHQUIZ_LOG_FORMAT" envDefault:"text"`
	Seed      uint64 // 0 seeds from the clock
}

// DefaultConfig returns the configuration defaults, taking log settings from
// the process environment. Variables in the optional dotenv files fill in
// what the environment leaves unset; earlier files win over later ones.
func DefaultConfig(envFiles ...string) (Config, error) {
	environ := env.ToMap(os.Environ())
	for _, file := range envFiles {
		vars, err := godotenv.Read(file)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read env file %s: %w", file, err)
		}
		for k, v := range vars {
			if _, ok := environ[k]; !ok {
				environ[k] = v
			}
		}
	}
	return ConfigFromEnv(environ)
}

// ConfigFromEnv returns the configuration defaults resolved against the
// given environment.
func ConfigFromEnv(environ map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}
	return &cfg, nil
}
