package repl

import (
	"log/slog"

	"github.com/itsmostafa/gocalc/internal/console"
	"github.com/itsmostafa/gocalc/internal/session"
	"github.com/itsmostafa/gocalc/internal/transcript"
)

// Recorder receives one entry per completed turn
type Recorder interface {
	Record(entry transcript.Entry) error
}

// Config holds the loop configuration
type Config struct {
	// Console carries the dialogue with the user (required)
	Console *console.Console
	// Session is the state the loop mutates; a fresh session when nil
	Session *session.Session
	// Recorder receives the transcript; nothing is recorded when nil
	Recorder Recorder
	// Logger receives debug records; discarded when nil
	Logger *slog.Logger
	// Styles decorates output; the zero value is plain text
	Styles Styles
	// ShowMenu prints the operator menu before every operator prompt
	ShowMenu bool
}
