package calc

import (
	"errors"
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8.0"},
		{2, "2.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-3.5, "-3.5"},
		{0.1, "0.1"},
		{0.001, "0.001"},
		{0.0001, "1.0E-4"},
		{1234567, "1234567.0"},
		{1e7, "1.0E7"},
		{1e10, "1.0E10"},
		{1.5e-7, "1.5E-7"},
		{-2.5e20, "-2.5E20"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"5", 5},
		{" 3.25 ", 3.25},
		{"-7", -7},
		{"1e3", 1000},
		{"8.0", 8},
		{"2d", 2},
		{"2.5F", 2.5},
		{"Infinity", math.Inf(1)},
		{"-Infinity", math.Inf(-1)},
		{"1e400", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			if err != nil {
				t.Fatalf("ParseNumber(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseNumber_Invalid(t *testing.T) {
	invalid := []string{
		"", "   ", "abc", "quit", "1.2.3", "Error", "d",
		"inf", "+Inf", "-inf", "infinity", "INFINITY", "nan", "NAN", "Nan",
		"0x10", "0x1p3", "1_000", "1e", "e5", ".", "-", "1e+",
	}
	for _, in := range invalid {
		if _, err := ParseNumber(in); !errors.Is(err, ErrNotNumeric) {
			t.Errorf("ParseNumber(%q) error = %v, want ErrNotNumeric", in, err)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, f := range []float64{8, -0.5, 1e10, 1.5e-7, 42.125, math.Inf(1)} {
		got, err := ParseNumber(FormatNumber(f))
		if err != nil {
			t.Fatalf("ParseNumber(FormatNumber(%v)) unexpected error: %v", f, err)
		}
		if got != f {
			t.Errorf("round trip of %v = %v", f, got)
		}
	}
}

func TestParseNumber_NaN(t *testing.T) {
	got, err := ParseNumber("NaN")
	if err != nil {
		t.Fatalf("ParseNumber(NaN) unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("ParseNumber(NaN) = %v, want NaN", got)
	}
}

func TestParseNumber_DecimalForms(t *testing.T) {
	tests := map[string]float64{
		"+4":        4,
		".5":        0.5,
		"3.":        3,
		"2E2":       200,
		"1.5e-2":    0.015,
		"+Infinity": math.Inf(1),
	}
	for in, want := range tests {
		got, err := ParseNumber(in)
		if err != nil {
			t.Errorf("ParseNumber(%q) unexpected error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseNumber(%q) = %v, want %v", in, got, want)
		}
	}
}
