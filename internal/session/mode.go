package session

// DisplayMode is the base the display value is rendered in. Modes form the
// ring Decimal -> Binary -> Octal -> Hexadecimal -> Decimal.
type DisplayMode int

const (
	Decimal DisplayMode = iota
	Binary
	Octal
	Hexadecimal
)

const displayModeCount = 4

// Next returns the following mode in the ring
func (m DisplayMode) Next() DisplayMode {
	return (m + 1) % displayModeCount
}

// Prev returns the mode whose Next is m
func (m DisplayMode) Prev() DisplayMode {
	return (m + displayModeCount - 1) % displayModeCount
}

// Radix returns the numeric base of the mode
func (m DisplayMode) Radix() int {
	switch m {
	case Binary:
		return 2
	case Octal:
		return 8
	case Hexadecimal:
		return 16
	default:
		return 10
	}
}

func (m DisplayMode) String() string {
	switch m {
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "unknown"
	}
}

// UnitsMode is the angle unit the display value is labelled with
type UnitsMode int

const (
	Degrees UnitsMode = iota
	Radians
)

// Other returns the opposite unit
func (u UnitsMode) Other() UnitsMode {
	if u == Degrees {
		return Radians
	}
	return Degrees
}

func (u UnitsMode) String() string {
	if u == Radians {
		return "radians"
	}
	return "degrees"
}
