// Package session holds the mutable calculator state: the displayed value,
// its base and angle units, and the single-slot memory register.
//
// A Session is owned by one REPL loop and is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"math"

	"github.com/itsmostafa/gocalc/internal/calc"
)

// InfinityText is the display text of positive infinity; it can never be
// stored in memory.
const InfinityText = "Infinity"

var (
	// ErrInfiniteMemory is returned when saving "Infinity" to memory
	ErrInfiniteMemory = errors.New("memory is not infinite")

	// ErrModeJump is returned when a one-shot base jump is requested from a
	// mode other than the target's ring predecessor
	ErrModeJump = errors.New("cannot jump to display mode")
)

// Session is the calculator's display, mode and memory state
type Session struct {
	display     string
	displayMode DisplayMode
	unitsMode   UnitsMode
	memory      string
}

// New returns a session showing "0" in decimal degrees with memory "0"
func New() *Session {
	return &Session{
		display:     "0",
		displayMode: Decimal,
		unitsMode:   Degrees,
		memory:      "0",
	}
}

// Display returns the displayed text
func (s *Session) Display() string { return s.display }

// DisplayMode returns the current base
func (s *Session) DisplayMode() DisplayMode { return s.displayMode }

// UnitsMode returns the current angle unit
func (s *Session) UnitsMode() UnitsMode { return s.unitsMode }

// Memory returns the memory register
func (s *Session) Memory() string { return s.memory }

// SetValue replaces the displayed text without validating it
func (s *Session) SetValue(text string) {
	s.display = text
}

// Clear resets the display to "0"
func (s *Session) Clear() {
	s.display = "0"
}

// ResetModes returns to decimal degrees without touching the display
func (s *Session) ResetModes() {
	s.displayMode = Decimal
	s.unitsMode = Degrees
}

// CycleDisplayMode advances one step around the base ring and returns the new
// mode. Entering binary, octal or hexadecimal re-renders the display as the
// rounded display value in that base; returning to decimal leaves the text
// as it is. If the display is not numeric the mode is left unchanged.
func (s *Session) CycleDisplayMode() (DisplayMode, error) {
	next := s.displayMode.Next()
	if next != Decimal {
		v, err := calc.ParseNumber(s.display)
		if err != nil {
			return s.displayMode, fmt.Errorf("switch to %s: %w", next, err)
		}
		s.display = FormatBase(v, next.Radix())
	}
	s.displayMode = next
	return next, nil
}

// SetDisplayMode jumps to target by a single ring step. It only succeeds when
// the current mode is target's predecessor, so hexadecimal is reachable only
// from octal, octal only from binary and binary only from decimal.
func (s *Session) SetDisplayMode(target DisplayMode) (DisplayMode, error) {
	if target == Decimal || s.displayMode != target.Prev() {
		return s.displayMode, fmt.Errorf("%w %s from %s", ErrModeJump, target, s.displayMode)
	}
	return s.CycleDisplayMode()
}

// CycleUnitsMode toggles the angle unit and re-renders the display. Entering
// radians multiplies by pi/180. Entering degrees adds pi/180 to the value
// instead of converting it back; callers rely on that exact arithmetic.
func (s *Session) CycleUnitsMode() (UnitsMode, error) {
	v, err := calc.ParseNumber(s.display)
	if err != nil {
		return s.unitsMode, fmt.Errorf("switch to %s: %w", s.unitsMode.Other(), err)
	}

	if s.unitsMode == Degrees {
		v *= math.Pi / 180
	} else {
		v += math.Pi / 180
	}
	s.unitsMode = s.unitsMode.Other()
	s.display = calc.FormatNumber(v)
	return s.unitsMode, nil
}

// SetUnitsMode lands in target by switching from the opposite unit,
// whatever the current unit is.
func (s *Session) SetUnitsMode(target UnitsMode) (UnitsMode, error) {
	prev := s.unitsMode
	s.unitsMode = target.Other()
	u, err := s.CycleUnitsMode()
	if err != nil {
		s.unitsMode = prev
		return prev, err
	}
	return u, nil
}

// SaveMemory copies the display into memory. Saving "Infinity" is refused:
// memory keeps its value and the display resets to "0".
func (s *Session) SaveMemory() error {
	if s.display == InfinityText {
		s.display = "0"
		return ErrInfiniteMemory
	}
	s.memory = s.display
	return nil
}

// ResetMemory sets memory back to "0"
func (s *Session) ResetMemory() {
	s.memory = "0"
}

// RecallMemory copies memory into the display and returns it
func (s *Session) RecallMemory() string {
	s.display = s.memory
	return s.memory
}
