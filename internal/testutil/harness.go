package testutil

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/specialistvlad/mathquiz/internal/app"
	"github.com/specialistvlad/mathquiz/internal/quiz"
)

// HarnessResult holds the outcomes of a scripted quiz run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Report    *quiz.Report
	Err       error
}

// RunQuiz plays a full quiz through app.App with the given input lines and
// scripted random source. A nil cfg runs without a preset at debug level.
func RunQuiz(t *testing.T, cfg *app.Config, src quiz.RandomSource, lines ...string) *HarnessResult {
	t.Helper()

	if cfg == nil {
		cfg = &app.Config{LogLevel: "debug", LogFormat: "text"}
	}

	input := strings.NewReader(strings.Join(lines, "\n") + "\n")
	out := &bytes.Buffer{}
	logBuffer := &bytes.Buffer{}

	testApp := app.NewApp(input, out, logBuffer, cfg, app.WithRandomSource(src))
	report, err := testApp.Run(context.Background())

	if os.Getenv("MATHQUIZ_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    out.String(),
		LogOutput: logBuffer.String(),
		Report:    report,
		Err:       err,
	}
}
