package quiz_test

import (
	"errors"
	"testing"

	"github.com/specialistvlad/mathquiz/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyRange(t *testing.T) {
	t.Parallel()

	assert.Equal(t, quiz.Range{Min: 1, Max: 10}, quiz.Easy.Range())
	assert.Equal(t, quiz.Range{Min: 10, Max: 50}, quiz.Medium.Range())
	assert.Equal(t, quiz.Range{Min: 50, Max: 100}, quiz.Hard.Range())
	assert.Panics(t, func() { quiz.Difficulty(0).Range() })
}

func TestOperationMenuValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, int(quiz.Addition))
	assert.Equal(t, 5, int(quiz.Random))
	assert.True(t, quiz.Random.Valid())
	assert.False(t, quiz.Random.Concrete())
	assert.Empty(t, quiz.Random.Symbol())
	assert.False(t, quiz.Operation(0).Valid())
	assert.False(t, quiz.Operation(6).Valid())
	assert.Equal(t, "Operation(6)", quiz.Operation(6).String())
	assert.Equal(t, "Difficulty(4)", quiz.Difficulty(4).String())
}

func TestParseNames(t *testing.T) {
	t.Parallel()

	op, ok := quiz.ParseOperationName("  MULTIPLICATION ")
	require.True(t, ok)
	assert.Equal(t, quiz.Multiplication, op)

	_, ok = quiz.ParseOperationName("modulo")
	assert.False(t, ok)

	d, ok := quiz.ParseDifficultyName("hard")
	require.True(t, ok)
	assert.Equal(t, quiz.Hard, d)

	_, ok = quiz.ParseDifficultyName("3")
	assert.False(t, ok)
}

func TestSettingsValidate(t *testing.T) {
	t.Parallel()

	valid := quiz.Settings{Operation: quiz.Random, Difficulty: quiz.Medium, TotalQuestions: 1}
	require.NoError(t, valid.Validate())

	err := quiz.Settings{Operation: 0, Difficulty: 4, TotalQuestions: 0}.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, quiz.ErrOutOfRange))
	assert.Contains(t, err.Error(), "operation")
	assert.Contains(t, err.Error(), "difficulty")
	assert.Contains(t, err.Error(), "questions")
}
