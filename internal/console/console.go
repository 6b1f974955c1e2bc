// Package console is the calculator's line-oriented dialogue with the user:
// it writes prompts and messages and reads operator tokens and numbers.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/gocalc/internal/calc"
)

// NotNumericMessage is printed when ReadNumber gets something other than a number
const NotNumericMessage = "Error: not a numerical value"

// Console couples a line source with an output writer
type Console struct {
	src LineSource
	out io.Writer

	// PromptStyle and ErrorStyle decorate prompts and input diagnostics
	PromptStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
}

// New creates a Console that reads from src and writes to out
func New(src LineSource, out io.Writer) *Console {
	return &Console{
		src:         src,
		out:         out,
		PromptStyle: lipgloss.NewStyle(),
		ErrorStyle:  lipgloss.NewStyle(),
	}
}

// Out returns the output writer
func (c *Console) Out() io.Writer {
	return c.out
}

// Printf writes formatted text as is
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line of text
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// ReadLine prints prompt on its own line and returns the next input line with
// surrounding whitespace removed.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.prompt(prompt)
	line, err := c.src.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// ReadNumber prints prompt and parses the first whitespace-delimited token of
// the next line. Non-numeric input is reported and read as 0; only I/O
// failures are returned as errors.
func (c *Console) ReadNumber(prompt string) (float64, error) {
	c.prompt(prompt)
	line, err := c.src.ReadLine()
	if err != nil {
		return 0, err
	}

	var token string
	if fields := strings.Fields(line); len(fields) > 0 {
		token = fields[0]
	}
	v, err := calc.ParseNumber(token)
	if err != nil {
		fmt.Fprintln(c.out, c.ErrorStyle.Render(NotNumericMessage))
		return 0, nil
	}
	return v, nil
}

func (c *Console) prompt(prompt string) {
	// style line by line so multi-line prompts are not padded to a block
	for _, line := range strings.Split(prompt, "\n") {
		if line == "" {
			fmt.Fprintln(c.out)
			continue
		}
		fmt.Fprintln(c.out, c.PromptStyle.Render(line))
	}
}
