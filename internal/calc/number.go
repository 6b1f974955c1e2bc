package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders f the way the calculator shows values: always at least
// one fractional digit ("8.0"), scientific notation with an upper-case E
// outside [1e-3, 1e7) ("1.0E10"), and "Infinity", "-Infinity" or "NaN" for
// the non-finite values.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}

// ParseNumber reads text as a number. Surrounding whitespace is ignored, a
// trailing d/D/f/F type suffix is accepted and out-of-range magnitudes become
// infinities. Anything else that is not a number yields ErrNotNumeric.
func ParseNumber(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if n := len(s); n > 1 && strings.ContainsRune("dDfF", rune(s[n-1])) {
		if prev := s[n-2]; prev == '.' || (prev >= '0' && prev <= '9') {
			s = s[:n-1]
		}
	}
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrNotNumeric)
	}

	switch s {
	case "Infinity", "+Infinity":
		return math.Inf(1), nil
	case "-Infinity":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	if !numeric(s) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, text)
	}
	return f, nil
}

// numeric reports whether s is spelled as a decimal literal: digits with an
// optional sign, point and exponent. Spellings such as "inf", "nan", hex
// floats and underscores are rejected.
func numeric(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	mantissa, exp, hasExp := strings.Cut(strings.ToLower(s), "e")
	intPart, frac, _ := strings.Cut(mantissa, ".")
	if !digits(intPart) || !digits(frac) || intPart+frac == "" {
		return false
	}
	if !hasExp {
		return true
	}
	if exp != "" && (exp[0] == '+' || exp[0] == '-') {
		exp = exp[1:]
	}
	return exp != "" && digits(exp)
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
