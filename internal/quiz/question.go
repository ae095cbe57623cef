package quiz

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is returned when a question cannot be built for the
// requested or drawn operation.
var ErrInvalidOperation = errors.New("invalid operation")

// Question is a single generated problem. Operation is always concrete.
type Question struct {
	Operand1  float64
	Operand2  float64
	Operation Operation
	Answer    float64
}

// Prompt renders the expression shown to the player, e.g. "3 + 4 = ".
func (q Question) Prompt() string {
	return fmt.Sprintf("%s %s %s = ", FormatNumber(q.Operand1), q.Operation.Symbol(), FormatNumber(q.Operand2))
}

// Check reports whether answer matches the correct answer exactly.
func (q Question) Check(answer float64) bool {
	return answer == q.Answer
}

// NewQuestion draws both operands from r and, when op is Random, a concrete
// operation for this question only. The draw order is operand1, operand2,
// then operation.
func NewQuestion(rnd RandomSource, op Operation, r Range) (Question, error) {
	q := Question{
		Operand1: float64(rnd.Next(r.Min, r.Max)),
		Operand2: float64(rnd.Next(r.Min, r.Max)),
	}

	if op == Random {
		op = Operation(rnd.Next(int(Addition), int(Division)))
	}
	if !op.Concrete() {
		return Question{}, fmt.Errorf("%w: %v", ErrInvalidOperation, op)
	}
	q.Operation = op

	switch op {
	case Addition:
		q.Answer = q.Operand1 + q.Operand2
	case Subtraction:
		q.Answer = q.Operand1 - q.Operand2
	case Multiplication:
		q.Answer = q.Operand1 * q.Operand2
	case Division:
		// A zero divisor is shown and computed as 1.
		if q.Operand2 == 0 {
			q.Operand2 = 1
		}
		q.Answer = q.Operand1 / q.Operand2
	}
	return q, nil
}
