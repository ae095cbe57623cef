package preset

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/mathquiz/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// HCLLoader is the HCL implementation of Loader.
type HCLLoader struct{}

// NewHCLLoader creates a new HCL preset loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{}
}

type hclRoot struct {
	Quiz   *hclQuiz `hcl:"quiz,block"`
	Remain hcl.Body `hcl:",remain"`
}

// Missing optional attributes decode to a static null expression.
type hclQuiz struct {
	Operation  hcl.Expression `hcl:"operation,optional"`
	Difficulty hcl.Expression `hcl:"difficulty,optional"`
	Questions  hcl.Expression `hcl:"questions,optional"`
}

// Load parses the file at path and translates its quiz block.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Preset, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL preset loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var root hclRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	if root.Quiz == nil {
		return nil, fmt.Errorf("HCL file %s has no quiz block", path)
	}

	var raw rawPreset
	var err error
	if raw.Operation, err = exprString(root.Quiz.Operation); err != nil {
		return nil, fmt.Errorf("operation: %w", err)
	}
	if raw.Difficulty, err = exprString(root.Quiz.Difficulty); err != nil {
		return nil, fmt.Errorf("difficulty: %w", err)
	}
	if raw.Questions, err = exprString(root.Quiz.Questions); err != nil {
		return nil, fmt.Errorf("questions: %w", err)
	}

	p, err := raw.resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", path, err)
	}
	logger.Debug("HCL preset loaded.", "path", path)
	return p, nil
}

// exprString evaluates a static expression and renders a number or string
// result as a string. Null results yield "".
func exprString(expr hcl.Expression) (string, error) {
	if expr == nil {
		return "", nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value must be known")
	}

	if val.Type() != cty.String && val.Type() != cty.Number {
		return "", fmt.Errorf("expected a number or a string, got %s", val.Type().FriendlyName())
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", err
	}

	var out string
	if err := gocty.FromCtyValue(str, &out); err != nil {
		return "", err
	}
	if out == "" {
		return "", fmt.Errorf("value must not be empty")
	}
	return out, nil
}
