package session

import (
	"math"
	"testing"
)

func TestFormatBase(t *testing.T) {
	tests := []struct {
		name  string
		v     float64
		radix int
		want  string
	}{
		{"binary", 10, 2, "1010"},
		{"octal", 64, 8, "100"},
		{"hex", 255, 16, "ff"},
		{"rounds half up", 2.5, 2, "11"},
		{"rounds down", 2.49, 2, "10"},
		{"negative half rounds toward positive", -2.5, 10, "4294967294"},
		{"negative two's complement", -1, 16, "ffffffff"},
		{"negative binary", -2, 2, "11111111111111111111111111111110"},
		{"nan is zero", math.NaN(), 2, "0"},
		{"wraps at 32 bits", 4294967296, 16, "0"},
		{"infinity saturates", math.Inf(1), 16, "ffffffff"},
		{"negative infinity saturates", math.Inf(-1), 16, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatBase(tt.v, tt.radix); got != tt.want {
				t.Errorf("FormatBase(%v, %d) = %q, want %q", tt.v, tt.radix, got, tt.want)
			}
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		v    float64
		want int64
	}{
		{0.49999999999999994, 0},
		{0.5, 1},
		{-0.5, 0},
		{-1.5, -1},
		{7, 7},
		{1e30, math.MaxInt64},
		{-1e30, math.MinInt64},
	}

	for _, tt := range tests {
		if got := roundHalfUp(tt.v); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}
