package quiz

import (
	"fmt"
	"io"
)

// Tally counts the answers of one run.
type Tally struct {
	Correct int
	Wrong   int
}

// Record counts one answer.
func (t *Tally) Record(correct bool) {
	if correct {
		t.Correct++
		return
	}
	t.Wrong++
}

// Total is the number of answers recorded so far.
func (t Tally) Total() int {
	return t.Correct + t.Wrong
}

// Passed reports whether the player has at least as many correct answers as
// wrong ones. A tie passes.
func (t Tally) Passed() bool {
	return t.Correct >= t.Wrong
}

// Report is the summary of a finished run.
type Report struct {
	Settings Settings
	Tally    Tally
}

// Passed reports the final verdict.
func (r Report) Passed() bool {
	return r.Tally.Passed()
}

// Label is "Passed" or "Failed".
func (r Report) Label() string {
	if r.Passed() {
		return "Passed"
	}
	return "Failed"
}

// Render writes the results block.
func (r Report) Render(w io.Writer) {
	face := ":("
	if r.Passed() {
		face = ":)"
	}
	fmt.Fprint(w, "\n===============================\n",
		"\t  Game Results  \t",
		"\n===============================\n")
	fmt.Fprintf(w, "Total Questions : %d\n", r.Settings.TotalQuestions)
	fmt.Fprintf(w, "Correct Answers : %d\n", r.Tally.Correct)
	fmt.Fprintf(w, "Wrong Answers   : %d\n", r.Tally.Wrong)
	fmt.Fprintf(w, "Final Result    : %s %s\n", r.Label(), face)
}
