package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/mathquiz/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	defaults, err := app.DefaultConfig()
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("mathquiz", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
MathQuiz - An interactive arithmetic quiz for the terminal.

Usage:
  mathquiz [options] [PRESET_PATH]

Arguments:
  PRESET_PATH
    Optional .hcl, .yaml or .yml file that pre-answers the settings prompts.

Options:
`)
		flagSet.PrintDefaults()
	}

	presetFlag := flagSet.String("preset", "", "Path to a settings preset file.")
	pFlag := flagSet.String("p", "", "Path to a settings preset file (shorthand).")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	seedFlag := flagSet.Uint64("seed", 0, "Seed for question generation. 0 picks a new seed on every run.")
	envFileFlag := flagSet.String("env-file", "", "Optional dotenv file with MATHQUIZ_* defaults.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args()[1:], " "))}
	}
	var sources []string
	for _, p := range []string{*presetFlag, *pFlag, flagSet.Arg(0)} {
		if p != "" {
			sources = append(sources, p)
		}
	}
	if len(sources) > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("preset given more than once: %s", strings.Join(sources, ", "))}
	}
	path := ""
	if len(sources) == 1 {
		path = sources[0]
	}
	slog.Debug("Preset path determined.", "path", path)

	if *envFileFlag != "" {
		fileDefaults, err := app.DefaultConfig(*envFileFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		set := map[string]bool{}
		flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })
		if !set["log-level"] {
			*logLevelFlag = fileDefaults.LogLevel
		}
		if !set["log-format"] {
			*logFormatFlag = fileDefaults.LogFormat
		}
		slog.Debug("Env file applied.", "path", *envFileFlag)
	}

	config, err := app.NewConfig(app.Config{
		PresetPath: path,
		LogLevel:   strings.ToLower(*logLevelFlag),
		LogFormat:  strings.ToLower(*logFormatFlag),
		Seed:       *seedFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
