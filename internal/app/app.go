package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/mathquiz/internal/preset"
	"github.com/specialistvlad/mathquiz/internal/quiz"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in      io.Reader
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	random  quiz.RandomSource
	presets func(path string) (preset.Loader, error)
}

// Option customizes an App at construction time.
type Option func(*App)

// WithRandomSource replaces the seeded random source, typically with a
// scripted one in tests.
func WithRandomSource(src quiz.RandomSource) Option {
	return func(a *App) {
		a.random = src
	}
}

// NewApp is the constructor for the main application. Prompts go to outW,
// answers are read from in and log records are written to logW.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, opts ...Option) *App {
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		in:      in,
		outW:    outW,
		logger:  logger,
		config:  cfg,
		presets: preset.ForPath,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.random == nil {
		a.random = quiz.NewRandSource(cfg.Seed)
		logger.Debug("Random source seeded.", "seed", cfg.Seed)
	}
	return a
}
