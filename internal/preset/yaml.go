package preset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/mathquiz/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// YAMLLoader is the YAML implementation of Loader.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML preset loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

type yamlRoot struct {
	Quiz *yamlQuiz `yaml:"quiz"`
}

// Fields left out of the document decode to a zero Node.
type yamlQuiz struct {
	Operation  yaml.Node `yaml:"operation"`
	Difficulty yaml.Node `yaml:"difficulty"`
	Questions  yaml.Node `yaml:"questions"`
}

// Load reads the file at path and translates its quiz mapping. Unknown keys
// are rejected.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML preset loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var root yamlRoot
	if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", path, err)
	}
	if root.Quiz == nil {
		// "quiz:" with no entries decodes to a nil section, same as an empty block.
		if !hasQuizKey(data) {
			return nil, fmt.Errorf("YAML file %s has no quiz section", path)
		}
		root.Quiz = &yamlQuiz{}
	}

	var raw rawPreset
	if raw.Operation, err = scalar(&root.Quiz.Operation); err != nil {
		return nil, fmt.Errorf("operation: %w", err)
	}
	if raw.Difficulty, err = scalar(&root.Quiz.Difficulty); err != nil {
		return nil, fmt.Errorf("difficulty: %w", err)
	}
	if raw.Questions, err = scalar(&root.Quiz.Questions); err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}

	p, err := raw.resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", path, err)
	}
	logger.Debug("YAML preset loaded.", "path", path)
	return p, nil
}

func hasQuizKey(data []byte) bool {
	var keys map[string]any
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return false
	}
	_, ok := keys["quiz"]
	return ok
}

// scalar returns the text of a scalar node. Absent and null nodes yield "".
func scalar(n *yaml.Node) (string, error) {
	if n.Kind == 0 || n.ShortTag() == "!!null" {
		return "", nil
	}
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("line %d: expected a number or a string", n.Line)
	}
	if n.Value == "" {
		return "", fmt.Errorf("line %d: value must not be empty", n.Line)
	}
	return n.Value, nil
}
