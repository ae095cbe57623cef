package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/mathquiz/internal/ctxlog"
	"github.com/specialistvlad/mathquiz/internal/quiz"
)

// ErrInvalidPreset wraps every failure to load or validate the preset file.
var ErrInvalidPreset = errors.New("invalid preset")

// LoadPreset returns the settings pre-answered by the configured preset, or
// empty answers when no preset is configured.
func (a *App) LoadPreset(ctx context.Context) (quiz.Answers, error) {
	logger := ctxlog.FromContext(ctx)

	var answers quiz.Answers
	path := a.config.PresetPath
	if path == "" {
		logger.Debug("No preset configured, all settings will be prompted.")
		return answers, nil
	}

	loader, err := a.presets(path)
	if err != nil {
		return answers, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	p, err := loader.Load(ctx, path)
	if err != nil {
		return answers, fmt.Errorf("%w: %w", ErrInvalidPreset, err)
	}
	p.Apply(&answers)

	logger.Info("Preset loaded.", "path", path, "complete", answers.Complete())
	return answers, nil
}
