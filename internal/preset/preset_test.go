package preset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/mathquiz/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// writePreset writes content to a temporary file with the given name.
func writePreset(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		file      string
		content   string
		want      *Preset
		expectErr bool
	}{
		{
			name: "HCL with numbers",
			file: "quiz.hcl",
			content: `
quiz {
  operation  = 4
  difficulty = 3
  questions  = 20
}`,
			want: &Preset{Operation: ptr(quiz.Division), Difficulty: ptr(quiz.Hard), Questions: ptr(20)},
		},
		{
			name: "HCL with names",
			file: "quiz.hcl",
			content: `
quiz {
  operation  = "Random"
  difficulty = "medium"
}`,
			want: &Preset{Operation: ptr(quiz.Random), Difficulty: ptr(quiz.Medium)},
		},
		{
			name:    "HCL numeric string",
			file:    "quiz.hcl",
			content: `quiz { questions = "7" }`,
			want:    &Preset{Questions: ptr(7)},
		},
		{
			name:    "HCL empty block",
			file:    "quiz.hcl",
			content: `quiz {}`,
			want:    &Preset{},
		},
		{
			name:      "HCL missing quiz block",
			file:      "quiz.hcl",
			content:   `other {}`,
			expectErr: true,
		},
		{
			name:      "HCL syntax error",
			file:      "quiz.hcl",
			content:   `quiz {`,
			expectErr: true,
		},
		{
			name:      "HCL unknown attribute",
			file:      "quiz.hcl",
			content:   `quiz { timer = 10 }`,
			expectErr: true,
		},
		{
			name:      "HCL fractional count",
			file:      "quiz.hcl",
			content:   `quiz { questions = 2.5 }`,
			expectErr: true,
		},
		{
			name:      "HCL list value",
			file:      "quiz.hcl",
			content:   `quiz { operation = [1] }`,
			expectErr: true,
		},
		{
			name:      "HCL unknown operation name",
			file:      "quiz.hcl",
			content:   `quiz { operation = "modulo" }`,
			expectErr: true,
		},
		{
			name: "YAML with numbers",
			file: "quiz.yaml",
			content: `
quiz:
  operation: 1
  difficulty: 1
  questions: 3
`,
			want: &Preset{Operation: ptr(quiz.Addition), Difficulty: ptr(quiz.Easy), Questions: ptr(3)},
		},
		{
			name: "YML with names and a null",
			file: "quiz.yml",
			content: `
quiz:
  operation: subtraction
  difficulty: ~
`,
			want: &Preset{Operation: ptr(quiz.Subtraction)},
		},
		{
			name:    "YAML empty quiz section",
			file:    "quiz.yaml",
			content: "quiz:\n",
			want:    &Preset{},
		},
		{
			name:    "YAML quoted numeric string",
			file:    "quiz.yaml",
			content: "quiz:\n  questions: \"7\"\n",
			want:    &Preset{Questions: ptr(7)},
		},
		{
			name:      "YAML misspelled key",
			file:      "quiz.yaml",
			content:   "quiz:\n  questoins: 5\n  dificulty: 3\n",
			expectErr: true,
		},
		{
			name:      "YAML unknown top-level key",
			file:      "quiz.yaml",
			content:   "quiz:\n  questions: 5\ntimer: 10\n",
			expectErr: true,
		},
		{
			name:      "YAML empty file",
			file:      "quiz.yaml",
			content:   "",
			expectErr: true,
		},
		{
			name:      "YAML missing quiz section",
			file:      "quiz.yaml",
			content:   "questions: 3\n",
			expectErr: true,
		},
		{
			name:      "YAML out of range difficulty",
			file:      "quiz.yaml",
			content:   "quiz:\n  difficulty: 4\n",
			expectErr: true,
		},
		{
			name:      "YAML mapping value",
			file:      "quiz.yaml",
			content:   "quiz:\n  operation:\n    name: addition\n",
			expectErr: true,
		},
		{
			name:      "YAML zero questions",
			file:      "quiz.yaml",
			content:   "quiz:\n  questions: 0\n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writePreset(t, tc.file, tc.content)
			loader, err := ForPath(path)
			require.NoError(t, err)

			// --- Act ---
			got, err := loader.Load(context.Background(), path)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Preset mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_RangeErrorsAreWrapped(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"quiz.hcl":  `quiz { operation = 6 }`,
		"quiz.yaml": "quiz:\n  difficulty: 7\n",
	}

	for name, content := range files {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := writePreset(t, name, content)
			loader, err := ForPath(path)
			require.NoError(t, err)

			_, err = loader.Load(context.Background(), path)

			require.Error(t, err)
			assert.True(t, errors.Is(err, quiz.ErrOutOfRange), "got %v", err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")

	_, err := NewHCLLoader().Load(context.Background(), missing+".hcl")
	require.Error(t, err)

	_, err = NewYAMLLoader().Load(context.Background(), missing+".yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestForPath(t *testing.T) {
	t.Parallel()

	l, err := ForPath("a/b/quiz.HCL")
	require.NoError(t, err)
	assert.IsType(t, &HCLLoader{}, l)

	l, err = ForPath("quiz.yml")
	require.NoError(t, err)
	assert.IsType(t, &YAMLLoader{}, l)

	_, err = ForPath("quiz.json")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestApply(t *testing.T) {
	t.Parallel()

	existing := quiz.Easy
	answers := quiz.Answers{Difficulty: &existing}
	p := &Preset{Operation: ptr(quiz.Division), Questions: ptr(4)}

	p.Apply(&answers)

	require.NotNil(t, answers.Operation)
	assert.Equal(t, quiz.Division, *answers.Operation)
	assert.Equal(t, quiz.Easy, *answers.Difficulty, "unset preset fields must not clear answers")
	assert.Equal(t, 4, *answers.Questions)
	assert.True(t, answers.Complete())
}
