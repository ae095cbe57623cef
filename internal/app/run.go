package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/mathquiz/internal/ctxlog"
	"github.com/specialistvlad/mathquiz/internal/quiz"
)

// Run loads the preset, plays one quiz and returns its report.
func (a *App) Run(ctx context.Context) (*quiz.Report, error) {
	logger := a.logger.With("session", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("App.Run method started.")

	answers, err := a.LoadPreset(ctx)
	if err != nil {
		return nil, err
	}

	engine := quiz.NewEngine(a.in, a.outW, a.random)
	report, err := engine.Run(ctx, answers)
	if err != nil {
		return nil, fmt.Errorf("quiz aborted: %w", err)
	}

	logger.Info("Quiz finished.",
		"questions", report.Settings.TotalQuestions,
		"correct", report.Tally.Correct,
		"wrong", report.Tally.Wrong,
		"result", report.Label(),
	)
	return report, nil
}
