package console

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// LineSource yields one line of user input per call and io.EOF once the
// input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

// Open picks the line source for stdin: line editing through readline when
// interactive is set and stdin is a terminal, a plain scanner otherwise.
func Open(stdin *os.File, stdout io.Writer, interactive bool) (LineSource, error) {
	if interactive && term.IsTerminal(int(stdin.Fd())) {
		return NewReadlineSource(stdin, stdout)
	}
	return NewScannerSource(stdin), nil
}

// ScannerSource reads newline-terminated lines from any reader
type ScannerSource struct {
	scanner *bufio.Scanner
}

// NewScannerSource creates a ScannerSource over r
func NewScannerSource(r io.Reader) *ScannerSource {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return &ScannerSource{scanner: scanner}
}

// ReadLine returns the next line without its terminator
func (s *ScannerSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Close is a no-op; the underlying reader belongs to the caller
func (s *ScannerSource) Close() error {
	return nil
}

// ReadlineSource reads lines from a terminal with editing and in-session
// history. Ctrl-C and Ctrl-D both end the input.
type ReadlineSource struct {
	rl *readline.Instance
}

// NewReadlineSource creates a ReadlineSource on the given terminal streams
func NewReadlineSource(stdin io.ReadCloser, stdout io.Writer) (*ReadlineSource, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryLimit:    200,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           stdin,
		Stdout:          stdout,
	})
	if err != nil {
		return nil, err
	}
	return &ReadlineSource{rl: rl}, nil
}

// ReadLine returns the next edited line
func (s *ReadlineSource) ReadLine() (string, error) {
	line, err := s.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

// Close restores the terminal
func (s *ReadlineSource) Close() error {
	return s.rl.Close()
}
