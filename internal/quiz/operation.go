package quiz

import (
	"fmt"
	"strings"
)

// Operation is the arithmetic operation chosen from the operations menu.
// The values mirror the menu entries.
type Operation int

const (
	Addition       Operation = 1
	Subtraction    Operation = 2
	Multiplication Operation = 3
	Division       Operation = 4
	// Random re-rolls one of the four concrete operations for every question.
	Random Operation = 5
)

// Difficulty is the level chosen from the difficulty menu. It decides the
// operand range.
type Difficulty int

const (
	Easy   Difficulty = 1
	Medium Difficulty = 2
	Hard   Difficulty = 3
)

// Range is an inclusive operand range.
type Range struct {
	Min int
	Max int
}

var difficultyRanges = map[Difficulty]Range{
	Easy:   {Min: 1, Max: 10},
	Medium: {Min: 10, Max: 50},
	Hard:   {Min: 50, Max: 100},
}

var operationNames = map[Operation]string{
	Addition:       "Addition",
	Subtraction:    "Subtraction",
	Multiplication: "Multiplication",
	Division:       "Division",
	Random:         "Random",
}

var operationSymbols = map[Operation]string{
	Addition:       "+",
	Subtraction:    "-",
	Multiplication: "*",
	Division:       "/",
}

var difficultyNames = map[Difficulty]string{
	Easy:   "Easy",
	Medium: "Medium",
	Hard:   "Hard",
}

// Valid reports whether o is one of the menu entries.
func (o Operation) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

// Concrete reports whether o can be applied to a question, i.e. it is a
// valid operation other than Random.
func (o Operation) Concrete() bool {
	_, ok := operationSymbols[o]
	return ok
}

// Symbol returns the operator symbol used in question prompts. Random and
// invalid operations have no symbol.
func (o Operation) Symbol() string {
	return operationSymbols[o]
}

func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", int(o))
}

// Valid reports whether d is one of the menu entries.
func (d Difficulty) Valid() bool {
	_, ok := difficultyRanges[d]
	return ok
}

// Range returns the operand range for the difficulty. It panics on an
// invalid difficulty.
func (d Difficulty) Range() Range {
	r, ok := difficultyRanges[d]
	if !ok {
		panic(fmt.Sprintf("quiz: no operand range for %v", d))
	}
	return r
}

func (d Difficulty) String() string {
	if name, ok := difficultyNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseOperationName looks up an operation by its name, ignoring case.
func ParseOperationName(name string) (Operation, bool) {
	name = strings.TrimSpace(name)
	for op, n := range operationNames {
		if strings.EqualFold(n, name) {
			return op, true
		}
	}
	return 0, false
}

// ParseDifficultyName looks up a difficulty by its name, ignoring case.
func ParseDifficultyName(name string) (Difficulty, bool) {
	name = strings.TrimSpace(name)
	for d, n := range difficultyNames {
		if strings.EqualFold(n, name) {
			return d, true
		}
	}
	return 0, false
}
