package session

import (
	"math"
	"strconv"
)

// FormatBase renders the nearest integer to v in the given radix. The value
// is narrowed to 32 bits first and negative values are shown as their
// unsigned two's complement, so -1 in base 16 is "ffffffff".
func FormatBase(v float64, radix int) string {
	n := int32(roundHalfUp(v))
	return strconv.FormatUint(uint64(uint32(n)), radix)
}

// roundHalfUp rounds to the nearest integer with ties toward positive
// infinity. NaN becomes 0 and out-of-range values saturate at the int64
// bounds.
func roundHalfUp(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Floor(v)
	if v-r >= 0.5 {
		r++
	}
	switch {
	case r >= math.MaxInt64:
		return math.MaxInt64
	case r <= math.MinInt64:
		return math.MinInt64
	}
	return int64(r)
}
