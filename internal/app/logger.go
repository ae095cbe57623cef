package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger for one App. Records go to logW, never to the
// prompt writer, and carry the program name. A level slog cannot parse
// falls back to warn, the level main logs at before flags are read.
func newLogger(cfg *Config, logW io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch cfg.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(logW, opts)
	default:
		handler = slog.NewTextHandler(logW, opts)
	}

	return slog.New(handler).With("app", "mathquiz")
}
