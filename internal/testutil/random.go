package testutil

import (
	"fmt"

	"github.com/specialistvlad/mathquiz/internal/quiz"
)

// SequenceSource is a scripted quiz.RandomSource. Each call to Next returns
// the following value of Values, regardless of the requested bounds, and
// records the bounds it was called with.
type SequenceSource struct {
	Values []int
	Calls  []quiz.Range
	pos    int
}

// NewSequenceSource returns a source that yields values in order.
func NewSequenceSource(values ...int) *SequenceSource {
	return &SequenceSource{Values: values}
}

// Next implements quiz.RandomSource. It panics when the script runs out so
// that a test asking more questions than it scripted fails loudly.
func (s *SequenceSource) Next(min, max int) int {
	if s.pos >= len(s.Values) {
		panic(fmt.Sprintf("testutil: sequence exhausted after %d values", len(s.Values)))
	}
	s.Calls = append(s.Calls, quiz.Range{Min: min, Max: max})
	v := s.Values[s.pos]
	s.pos++
	return v
}

// Remaining is the number of scripted values not drawn yet.
func (s *SequenceSource) Remaining() int {
	return len(s.Values) - s.pos
}
