package quiz

import (
	"errors"
	"fmt"
)

// Settings are fixed once the first question is asked.
type Settings struct {
	Operation      Operation
	Difficulty     Difficulty
	TotalQuestions int
}

// Validate checks every field against the menu bounds.
func (s Settings) Validate() error {
	var errs []error
	if !s.Operation.Valid() {
		errs = append(errs, fmt.Errorf("operation: %w", &RangeError{Value: int(s.Operation), Bounds: OperationBounds}))
	}
	if !s.Difficulty.Valid() {
		errs = append(errs, fmt.Errorf("difficulty: %w", &RangeError{Value: int(s.Difficulty), Bounds: DifficultyBounds}))
	}
	if !QuestionCountBounds.Contains(s.TotalQuestions) {
		errs = append(errs, fmt.Errorf("questions: %w", &RangeError{Value: s.TotalQuestions, Bounds: QuestionCountBounds}))
	}
	return errors.Join(errs...)
}

// Range returns the operand range of the configured difficulty.
func (s Settings) Range() Range {
	return s.Difficulty.Range()
}

// Answers holds settings decided before the quiz starts, typically from a
// preset file. Nil fields are asked for interactively.
type Answers struct {
	Operation  *Operation
	Difficulty *Difficulty
	Questions  *int
}

// Validate checks the fields that are set.
func (a Answers) Validate() error {
	var errs []error
	if a.Operation != nil && !a.Operation.Valid() {
		errs = append(errs, fmt.Errorf("operation: %w", &RangeError{Value: int(*a.Operation), Bounds: OperationBounds}))
	}
	if a.Difficulty != nil && !a.Difficulty.Valid() {
		errs = append(errs, fmt.Errorf("difficulty: %w", &RangeError{Value: int(*a.Difficulty), Bounds: DifficultyBounds}))
	}
	if a.Questions != nil && !QuestionCountBounds.Contains(*a.Questions) {
		errs = append(errs, fmt.Errorf("questions: %w", &RangeError{Value: *a.Questions, Bounds: QuestionCountBounds}))
	}
	return errors.Join(errs...)
}

// Complete reports whether no prompt is left to ask.
func (a Answers) Complete() bool {
	return a.Operation != nil && a.Difficulty != nil && a.Questions != nil
}
