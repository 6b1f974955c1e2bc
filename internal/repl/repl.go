// Package repl runs the calculator's read-eval-print loop: each turn reads an
// operator, computes or changes modes, offers the memory register and then
// asks for the next value or quit.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/itsmostafa/gocalc/internal/calc"
	"github.com/itsmostafa/gocalc/internal/console"
	"github.com/itsmostafa/gocalc/internal/session"
	"github.com/itsmostafa/gocalc/internal/transcript"
)

// Dialogue text shared with tests
const (
	PromptFirstNumber   = "Enter a number"
	PromptOperator      = "Enter an operator: "
	PromptAnotherNumber = "\nEnter another number"
	PromptMemoryChoice  = "\nEnter 'm+' to save the value.  Enter 'c' to clear"
	PromptNextValue     = "\nEnter 'quit' to stop, 'mrc' to use a saved value, or enter another number."
	PromptRetryNumber   = "\nError.  Enter a numerical value."
	PromptChangeBase    = "Enter \"changebase\" to switch mode again or enter \"back\" to go back to calculator\n"
	PromptChangeUnits   = "Enter \"changeunits\" to switch mode again or enter \"back\" to go back.\n"

	MsgUnknownOperator = "Not a proper operator"
	MsgDivideByZero    = "Error.  Cannot divide by 0."
	MsgInfiniteMemory  = "Error.  Memory is not infinite..."

	// ErrorDisplay is the display sentinel after a failed computation
	ErrorDisplay = "Error"
)

// Literal replies; unlike operator tokens these are not case-folded
const (
	replySave   = "m+"
	replyClear  = "c"
	replyQuit   = "quit"
	replyRecall = "mrc"
)

// Run drives the dialogue until the user quits or input ends. Every user
// mistake is reported and recovered in place; only I/O failures other than
// end of input are returned.
func Run(cfg Config) error {
	if cfg.Console == nil {
		return errors.New("repl: console is required")
	}
	if cfg.Session == nil {
		cfg.Session = session.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}

	l := &loop{
		cfg:  cfg,
		con:  cfg.Console,
		sess: cfg.Session,
		out:  cfg.Console.Out(),
		st:   cfg.Styles,
		log:  cfg.Logger,
	}

	err := l.run()
	if errors.Is(err, io.EOF) {
		l.log.Debug("input closed", "turns", l.turns)
		return nil
	}
	return err
}

// loop is the state carried between turns
type loop struct {
	cfg  Config
	con  *console.Console
	sess *session.Session
	out  io.Writer
	st   Styles
	log  *slog.Logger

	// x is the accumulator operators act on
	x     float64
	turns int
}

// turn collects what happened during one pass for logging and the transcript
type turn struct {
	token    string
	op       calc.Op
	y        float64
	hasY     bool
	result   float64
	computed bool
	err      error
}

func (l *loop) run() error {
	FormatBanner(l.out, l.st)

	x, err := l.con.ReadNumber(PromptFirstNumber)
	if err != nil {
		return err
	}
	l.x = x

	for {
		l.turns++
		var t turn

		if err := l.readOperator(&t); err != nil {
			return err
		}
		if err := l.memoryChoice(&t); err != nil {
			return err
		}
		if err := l.record(&t); err != nil {
			return err
		}

		quit, err := l.nextValue(&t)
		if err != nil {
			return err
		}
		if quit {
			l.log.Debug("quit", "turns", l.turns)
			return nil
		}
	}
}

// readOperator reads one operator token and carries it out
func (l *loop) readOperator(t *turn) error {
	if l.cfg.ShowMenu {
		FormatMenu(l.out, l.st)
	}

	line, err := l.con.ReadLine(PromptOperator)
	if err != nil {
		return err
	}

	op, err := calc.Lookup(line)
	if err != nil {
		t.token, t.err = line, err
		FormatError(l.out, l.st, MsgUnknownOperator)
		l.log.Debug("unknown operator", "token", line)
		return nil
	}
	// the case-folded token is what unary equations echo back
	t.token, t.op = strings.ToLower(line), op

	if op.IsComputation() {
		return l.compute(t)
	}
	return l.sessionOp(t)
}

// compute evaluates an arithmetic or trigonometric operator against x
func (l *loop) compute(t *turn) error {
	if t.op.IsBinary() {
		y, err := l.con.ReadNumber(PromptAnotherNumber)
		if err != nil {
			return err
		}
		t.y, t.hasY = y, true
	}

	result, err := calc.Compute(t.op, l.x, t.y)
	if err != nil {
		t.err = err
		l.sess.SetValue(ErrorDisplay)
		FormatError(l.out, l.st, computeErrorMessage(err))
		l.log.Debug("compute failed", "op", t.op, "x", l.x, "y", t.y, "error", err)
		return nil
	}

	t.result, t.computed = result, true
	FormatEquation(l.out, l.st, equation(t.op, t.token, l.x, t.y, result))
	l.sess.SetValue(calc.FormatNumber(result))
	l.log.Debug("computed", "op", t.op, "x", l.x, "y", t.y, "result", result)
	return nil
}

func computeErrorMessage(err error) string {
	switch {
	case errors.Is(err, calc.ErrDivideByZero):
		return MsgDivideByZero
	case errors.Is(err, calc.ErrNegativeFactorial):
		return "Error.  Factorial needs a non-negative number."
	default:
		return fmt.Sprintf("Error.  %v", err)
	}
}

// sessionOp carries out operators that act on the display, modes or memory
func (l *loop) sessionOp(t *turn) error {
	switch t.op {
	case calc.OpChangeBase:
		return l.repeat(string(calc.OpChangeBase), PromptChangeBase, l.cycleBase)

	case calc.OpChangeUnits:
		return l.repeat(string(calc.OpChangeUnits), PromptChangeUnits, l.cycleUnits)

	case calc.OpBinary, calc.OpOctal, calc.OpHex:
		target := targetBase(t.op)
		prev := l.sess.Display()
		l.sess.SetValue(calc.FormatNumber(l.x))
		from := l.sess.DisplayMode()
		mode, err := l.sess.SetDisplayMode(target)
		if err != nil {
			t.err = err
			l.sess.SetValue(prev)
			FormatError(l.out, l.st, fmt.Sprintf("Error.  Cannot switch to %s from %s.", target, from))
			l.log.Debug("base jump refused", "from", from, "to", target)
			return nil
		}
		FormatBase(l.out, l.st, mode, l.sess.Display())

	case calc.OpDegrees, calc.OpRadians:
		target := session.Degrees
		if t.op == calc.OpRadians {
			target = session.Radians
		}
		l.sess.SetValue(calc.FormatNumber(l.x))
		units, err := l.sess.SetUnitsMode(target)
		if err != nil {
			t.err = err
			FormatError(l.out, l.st, fmt.Sprintf("Error.  %v", err))
			return nil
		}
		FormatUnits(l.out, l.st, units, l.sess.Display())

	case calc.OpMemorySave:
		l.sess.SetValue(calc.FormatNumber(l.x))
		l.saveMemory(t)

	case calc.OpMemoryReset:
		l.sess.ResetMemory()
		FormatMessage(l.out, fmt.Sprintf("The memory value has been reset to %s", l.sess.Memory()))

	case calc.OpMemoryRecall:
		FormatValue(l.out, l.st, l.sess.RecallMemory())

	case calc.OpClear:
		l.sess.Clear()
		fmt.Fprintln(l.out)
		FormatValue(l.out, l.st, "0.0")

	default:
		l.log.Debug("unhandled operator", "op", t.op, "token", t.token)
		return fmt.Errorf("failed to apply %q: %w", t.token, calc.ErrNotComputable)
	}

	return nil
}

// repeat runs step once, then again for as long as the user types word
// exactly. Any other reply, not only "back", ends the sub-loop.
func (l *loop) repeat(word, prompt string, step func() error) error {
	for reply := word; reply == word; {
		if err := step(); err != nil {
			return err
		}
		var err error
		if reply, err = l.con.ReadLine(prompt); err != nil {
			return err
		}
	}
	return nil
}

func (l *loop) cycleBase() error {
	l.sess.SetValue(calc.FormatNumber(l.x))
	mode, err := l.sess.CycleDisplayMode()
	if err != nil {
		FormatError(l.out, l.st, fmt.Sprintf("Error.  %v", err))
		return nil
	}
	FormatBase(l.out, l.st, mode, l.sess.Display())
	fmt.Fprintln(l.out)
	l.log.Debug("display mode", "mode", mode, "display", l.sess.Display())
	return nil
}

func (l *loop) cycleUnits() error {
	l.sess.SetValue(calc.FormatNumber(l.x))
	units, err := l.sess.CycleUnitsMode()
	if err != nil {
		FormatError(l.out, l.st, fmt.Sprintf("Error.  %v", err))
		return nil
	}
	FormatUnits(l.out, l.st, units, l.sess.Display())
	fmt.Fprintln(l.out)
	l.log.Debug("units mode", "units", units, "display", l.sess.Display())
	return nil
}

// saveMemory stores the display, refusing "Infinity"
func (l *loop) saveMemory(t *turn) {
	if err := l.sess.SaveMemory(); err != nil {
		t.err = err
		FormatError(l.out, l.st, MsgInfiniteMemory)
		l.log.Debug("memory save refused", "error", err)
		return
	}
	FormatMessage(l.out, fmt.Sprintf("%s has been saved to memory.", l.sess.Memory()))
}

// memoryChoice offers to save or clear the display. Replies other than the
// exact "m+" or "c" do nothing.
func (l *loop) memoryChoice(t *turn) error {
	reply, err := l.con.ReadLine(PromptMemoryChoice)
	if err != nil {
		return err
	}

	switch reply {
	case replySave:
		fmt.Fprintln(l.out)
		l.saveMemory(t)
	case replyClear:
		l.sess.Clear()
		t.result = 0
	}
	return nil
}

// nextValue asks for quit, a memory recall or the next accumulator value and
// reports whether the user quit. A blank reply keeps working with this
// turn's result, or with the unchanged accumulator when nothing was computed.
func (l *loop) nextValue(t *turn) (bool, error) {
	reply, err := l.con.ReadLine(PromptNextValue)
	if err != nil {
		return false, err
	}

	switch reply {
	case replyQuit:
		FormatGoodbye(l.out, l.st)
		return true, nil

	case replyRecall:
		mem := l.sess.Memory()
		v, err := calc.ParseNumber(mem)
		if err != nil {
			if err := l.retryNumber(); err != nil {
				return false, err
			}
			break
		}
		l.x = v
		fmt.Fprintln(l.out)
		FormatValue(l.out, l.st, mem)
		l.sess.SetValue(mem)

	case "":
		if t.computed {
			l.x = t.result
		}

	default:
		v, err := calc.ParseNumber(reply)
		if err != nil {
			if err := l.retryNumber(); err != nil {
				return false, err
			}
			break
		}
		l.x = v
		l.sess.SetValue(reply)
	}

	l.sess.ResetModes()
	return false, nil
}

// retryNumber asks once more for a number; non-numeric input reads as 0
func (l *loop) retryNumber() error {
	x, err := l.con.ReadNumber(PromptRetryNumber)
	if err != nil {
		return err
	}
	l.x = x
	return nil
}

func (l *loop) record(t *turn) error {
	if l.cfg.Recorder == nil {
		return nil
	}

	entry := transcript.Entry{
		Turn:     l.turns,
		Token:    t.token,
		Operator: string(t.op),
		X:        calc.FormatNumber(l.x),
		Display:  l.sess.Display(),
		Memory:   l.sess.Memory(),
	}
	if t.hasY {
		entry.Y = calc.FormatNumber(t.y)
	}
	if t.computed {
		entry.Result = calc.FormatNumber(t.result)
	}
	if t.err != nil {
		entry.Error = t.err.Error()
	}

	if err := l.cfg.Recorder.Record(entry); err != nil {
		return fmt.Errorf("failed to record turn %d: %w", l.turns, err)
	}
	return nil
}

func targetBase(op calc.Op) session.DisplayMode {
	switch op {
	case calc.OpOctal:
		return session.Octal
	case calc.OpHex:
		return session.Hexadecimal
	default:
		return session.Binary
	}
}
