// Package transcript appends one JSON line per completed calculator turn to a
// file. The transcript is an audit trail only; it is never read back into a
// session.
package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry describes one turn. Numbers are kept in display text so that
// infinities and NaN survive JSON encoding.
type Entry struct {
	SessionID string    `json:"session_id"`
	Turn      int       `json:"turn"`
	Token     string    `json:"token"`
	Operator  string    `json:"operator,omitempty"`
	X         string    `json:"x"`
	Y         string    `json:"y,omitempty"`
	Result    string    `json:"result,omitempty"`
	Display   string    `json:"display"`
	Memory    string    `json:"memory"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Recorder writes entries for a single session
type Recorder struct {
	sessionID string
	w         io.Writer
	closer    io.Closer
	now       func() time.Time
}

// New returns a Recorder writing to w under a fresh session id
func New(w io.Writer) *Recorder {
	return &Recorder{
		sessionID: uuid.New().String(),
		w:         w,
		now:       time.Now,
	}
}

// Open appends to the transcript file at path, creating it and its directory
// when missing.
func Open(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create transcript directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript file: %w", err)
	}

	r := New(f)
	r.closer = f
	return r, nil
}

// SessionID returns the id stamped on every entry
func (r *Recorder) SessionID() string {
	return r.sessionID
}

// Record stamps entry with the session id and time and appends it
func (r *Recorder) Record(entry Entry) error {
	entry.SessionID = r.sessionID
	entry.Timestamp = r.now()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript entry: %w", err)
	}

	if _, err := r.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transcript entry: %w", err)
	}

	return nil
}

// Close closes the transcript file if the Recorder opened it
func (r *Recorder) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
