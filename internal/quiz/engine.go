package quiz

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/mathquiz/internal/ctxlog"
)

// ErrInputClosed is returned when the input ends before the quiz finishes.
var ErrInputClosed = errors.New("input closed before the quiz finished")

// Engine drives one quiz run over a line-oriented reader and writer.
type Engine struct {
	in  *bufio.Reader
	out io.Writer
	rnd RandomSource
}

// NewEngine creates an engine that reads answers from in, writes prompts to
// out and draws questions from rnd.
func NewEngine(in io.Reader, out io.Writer, rnd RandomSource) *Engine {
	return &Engine{
		in:  bufio.NewReader(in),
		out: out,
		rnd: rnd,
	}
}

// Run collects the settings not already present in answers, asks every
// question and renders the report.
func (e *Engine) Run(ctx context.Context, answers Answers) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Quiz engine started.")

	e.printWelcome()
	settings, err := e.CollectSettings(ctx, answers)
	if err != nil {
		return nil, err
	}

	tally := &Tally{}
	for i := 1; i <= settings.TotalQuestions; i++ {
		if err := e.AskQuestion(ctx, i, settings, tally); err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}

	report := &Report{Settings: settings, Tally: *tally}
	report.Render(e.out)
	logger.Debug("Quiz engine finished.", "correct", tally.Correct, "wrong", tally.Wrong, "passed", report.Passed())
	return report, nil
}

// CollectSettings asks for every setting missing from answers, re-prompting
// until each one is valid.
func (e *Engine) CollectSettings(ctx context.Context, answers Answers) (Settings, error) {
	logger := ctxlog.FromContext(ctx)
	if err := answers.Validate(); err != nil {
		return Settings{}, err
	}

	var s Settings

	if answers.Operation != nil {
		s.Operation = *answers.Operation
		fmt.Fprintf(e.out, "\nOperation  : %s (preset)\n", s.Operation)
	} else {
		e.printOperationsScreen()
		v, err := e.readInt(ctx, OperationBounds)
		if err != nil {
			return Settings{}, err
		}
		s.Operation = Operation(v)
	}

	if answers.Difficulty != nil {
		s.Difficulty = *answers.Difficulty
		fmt.Fprintf(e.out, "Difficulty : %s (preset)\n", s.Difficulty)
	} else {
		e.printDifficultyScreen()
		v, err := e.readInt(ctx, DifficultyBounds)
		if err != nil {
			return Settings{}, err
		}
		s.Difficulty = Difficulty(v)
	}

	if answers.Questions != nil {
		s.TotalQuestions = *answers.Questions
		fmt.Fprintf(e.out, "Questions  : %d (preset)\n", s.TotalQuestions)
	} else {
		fmt.Fprint(e.out, "\nChoose Number of Questions: ")
		v, err := e.readInt(ctx, QuestionCountBounds)
		if err != nil {
			return Settings{}, err
		}
		s.TotalQuestions = v
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	logger.Info("Settings collected.",
		"operation", s.Operation.String(),
		"difficulty", s.Difficulty.String(),
		"questions", s.TotalQuestions,
	)
	return s, nil
}

// AskQuestion generates question number index, reads an answer and records
// the outcome in t.
func (e *Engine) AskQuestion(ctx context.Context, index int, s Settings, t *Tally) error {
	logger := ctxlog.FromContext(ctx)

	q, err := NewQuestion(e.rnd, s.Operation, s.Range())
	if err != nil {
		return err
	}

	fmt.Fprintf(e.out, "Q%d) %s", index, q.Prompt())
	answer, err := e.readNumber(ctx)
	if err != nil {
		return err
	}

	correct := q.Check(answer)
	t.Record(correct)
	if correct {
		fmt.Fprint(e.out, "Correct Answer! :)\n")
	} else {
		fmt.Fprintf(e.out, "Incorrect Answer! :(\a\nThe correct answer is %s\n", FormatNumber(q.Answer))
	}

	logger.Debug("Question answered.",
		"index", index,
		"question", strings.TrimSuffix(q.Prompt(), " = "),
		"expected", q.Answer,
		"got", answer,
		"correct", correct,
	)
	return nil
}

func (e *Engine) readLine() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return line, nil
}

// blank reports whether line holds nothing but whitespace. Such lines are
// skipped without a retry message, like a stream extraction would.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func (e *Engine) readInt(ctx context.Context, b Bounds) (int, error) {
	logger := ctxlog.FromContext(ctx)
	for {
		line, err := e.readLine()
		if err != nil {
			return 0, err
		}
		if blank(line) {
			continue
		}
		v, err := ParseInt(line, b)
		if err == nil {
			return v, nil
		}
		logger.Debug("Rejected menu input.", "error", err)

		fmt.Fprint(e.out, "Invalid Input!\nPlease enter a number")
		if errors.Is(err, ErrOutOfRange) {
			fmt.Fprintf(e.out, " %s", b)
		}
		fmt.Fprint(e.out, ": ")
	}
}

func (e *Engine) readNumber(ctx context.Context) (float64, error) {
	logger := ctxlog.FromContext(ctx)
	for {
		line, err := e.readLine()
		if err != nil {
			return 0, err
		}
		if blank(line) {
			continue
		}
		v, err := ParseNumber(line)
		if err == nil {
			return v, nil
		}
		logger.Debug("Rejected answer input.", "error", err)
		fmt.Fprint(e.out, "Invalid Input!\nPlease enter a number: ")
	}
}

func (e *Engine) printWelcome() {
	fmt.Fprint(e.out, "\n===============================\n",
		" WELCOME TO THE MATH TEST GAME ",
		"\n===============================\n")
}

func (e *Engine) printOperationsScreen() {
	fmt.Fprint(e.out, "\n\t  OPERATIONS  \t",
		"\n-------------------------------\n",
		"[1] Addition       (+)\n",
		"[2] Subtraction    (-)\n",
		"[3] Multiplication (*)\n",
		"[4] Division       (/)\n",
		"[5] Random      (+,-,*,/)\n",
		"-------------------------------\n",
		"Choose Operation: ")
}

func (e *Engine) printDifficultyScreen() {
	fmt.Fprint(e.out, "\n\tDIFFICULTY LEVEL\t",
		"\n-------------------------------\n",
		"[1] Easy   : ###-------\n",
		"[2] Medium : ######----\n",
		"[3] Hard   : ##########\n",
		"-------------------------------\n",
		"Choose Difficulty: ")
}
