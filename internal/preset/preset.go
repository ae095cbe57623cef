// Package preset loads settings presets that pre-answer the quiz settings
// prompts. Presets are written in HCL or YAML; both formats describe one
// "quiz" section with optional operation, difficulty and questions entries.
//
// Operation and difficulty accept either the menu number or the name:
//
//	quiz {
//	  operation  = "division"
//	  difficulty = 2
//	  questions  = 10
//	}
package preset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/mathquiz/internal/quiz"
)

// ErrUnsupportedFormat is returned by ForPath for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported preset format")

// Loader is the interface for a format-specific preset loader.
type Loader interface {
	// Load reads and validates the preset stored at path.
	Load(ctx context.Context, path string) (*Preset, error)
}

// Preset is a set of settings decided ahead of the run. Nil fields are left
// to the interactive prompts.
type Preset struct {
	Operation  *quiz.Operation
	Difficulty *quiz.Difficulty
	Questions  *int
}

// Apply copies the preset's fields into a, leaving unset fields untouched.
func (p *Preset) Apply(a *quiz.Answers) {
	if p.Operation != nil {
		a.Operation = p.Operation
	}
	if p.Difficulty != nil {
		a.Difficulty = p.Difficulty
	}
	if p.Questions != nil {
		a.Questions = p.Questions
	}
}

// ForPath returns the loader matching the file extension of path.
func ForPath(path string) (Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return NewHCLLoader(), nil
	case ".yaml", ".yml":
		return NewYAMLLoader(), nil
	default:
		return nil, fmt.Errorf("%w: %q (expected .hcl, .yaml or .yml)", ErrUnsupportedFormat, path)
	}
}

// parseOperation accepts a menu number or an operation name.
func parseOperation(raw string) (quiz.Operation, error) {
	if op, ok := quiz.ParseOperationName(raw); ok {
		return op, nil
	}
	v, err := quiz.ParseInt(raw, quiz.OperationBounds)
	if err != nil {
		return 0, fmt.Errorf("operation: %w", err)
	}
	return quiz.Operation(v), nil
}

// parseDifficulty accepts a menu number or a difficulty name.
func parseDifficulty(raw string) (quiz.Difficulty, error) {
	if d, ok := quiz.ParseDifficultyName(raw); ok {
		return d, nil
	}
	v, err := quiz.ParseInt(raw, quiz.DifficultyBounds)
	if err != nil {
		return 0, fmt.Errorf("difficulty: %w", err)
	}
	return quiz.Difficulty(v), nil
}

func parseQuestions(raw string) (int, error) {
	v, err := quiz.ParseInt(raw, quiz.QuestionCountBounds)
	if err != nil {
		return 0, fmt.Errorf("questions: %w", err)
	}
	return v, nil
}

// rawPreset is the format-independent shape shared by the loaders. Empty
// strings mean the entry was absent.
type rawPreset struct {
	Operation  string
	Difficulty string
	Questions  string
}

func (r rawPreset) resolve() (*Preset, error) {
	p := &Preset{}
	var errs []error

	if r.Operation != "" {
		if op, err := parseOperation(r.Operation); err != nil {
			errs = append(errs, err)
		} else {
			p.Operation = &op
		}
	}
	if r.Difficulty != "" {
		if d, err := parseDifficulty(r.Difficulty); err != nil {
			errs = append(errs, err)
		} else {
			p.Difficulty = &d
		}
	}
	if r.Questions != "" {
		if n, err := parseQuestions(r.Questions); err != nil {
			errs = append(errs, err)
		} else {
			p.Questions = &n
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return p, nil
}
