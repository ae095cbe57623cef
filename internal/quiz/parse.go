package quiz

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrNotANumber is returned when a line does not hold exactly one
	// well-formed number.
	ErrNotANumber = errors.New("not a number")
	// ErrOutOfRange is matched by every *RangeError.
	ErrOutOfRange = errors.New("number out of range")
)

// Bounds is an inclusive integer interval used to validate menu choices.
type Bounds struct {
	Min int
	Max int
}

// AtLeast returns bounds with no upper limit.
func AtLeast(min int) Bounds {
	return Bounds{Min: min, Max: math.MaxInt}
}

var (
	OperationBounds     = Bounds{Min: int(Addition), Max: int(Random)}
	DifficultyBounds    = Bounds{Min: int(Easy), Max: int(Hard)}
	QuestionCountBounds = AtLeast(1)
)

// Contains reports whether v is within the bounds.
func (b Bounds) Contains(v int) bool {
	return v >= b.Min && v <= b.Max
}

// String names the bounds the way retry prompts show them.
func (b Bounds) String() string {
	if b.Max == math.MaxInt {
		return fmt.Sprintf("of at least %d", b.Min)
	}
	return fmt.Sprintf("between %d and %d", b.Min, b.Max)
}

// RangeError reports a well-formed number that falls outside its bounds.
type RangeError struct {
	Value  int
	Bounds Bounds
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%d is not a number %s", e.Value, e.Bounds)
}

// Is makes errors.Is(err, ErrOutOfRange) hold for any RangeError.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// cleanLine strips the line terminator and leading blanks. Trailing blanks
// are kept so that they are rejected as extra characters.
func cleanLine(line string) string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return strings.TrimLeft(line, " \t")
}

// ParseInt parses a line holding a single integer within b.
func ParseInt(line string, b Bounds) (int, error) {
	s := cleanLine(line)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if !b.Contains(v) {
		return 0, &RangeError{Value: v, Bounds: b}
	}
	return v, nil
}

// ParseNumber parses a line holding a single finite decimal number.
// Hexadecimal notation, digit separators and non-finite values are rejected.
func ParseNumber(line string) (float64, error) {
	s := cleanLine(line)
	if s == "" || strings.IndexFunc(s, notDecimal) >= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}

func notDecimal(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return false
	case r == '+', r == '-', r == '.', r == 'e', r == 'E':
		return false
	}
	return true
}

// FormatNumber renders a number without an exponent and with the fewest
// digits that read back to the same value.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
