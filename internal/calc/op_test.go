package calc

import (
	"errors"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		token string
		want  Op
	}{
		{"+", OpAdd},
		{"add", OpAdd},
		{"SUM", OpAdd},
		{"Plus", OpAdd},
		{"-", OpSubtract},
		{"minus", OpSubtract},
		{"divided by", OpDivide},
		{"/", OpDivide},
		{"times", OpMultiply},
		{"%", OpModulus},
		{"remainder", OpModulus},
		{"^", OpExponent},
		{"^x", OpExponent},
		{"^2", OpSquare},
		{"TANH", OpTanh},
		{"square root", OpSqrt},
		{"root", OpSqrt},
		{"cbrt", OpCbrt},
		{"changebase", OpChangeBase},
		{"hex", OpHex},
		{"m+", OpMemorySave},
		{"M-", OpMemoryReset},
		{"mrc", OpMemoryRecall},
		{"changeunits", OpChangeUnits},
		{"radians", OpRadians},
		{"1/x", OpInverse},
		{"invertsign", OpInvertSign},
		{"!", OpFactorial},
		{"gcd", OpGCD},
		{"lcm", OpLCM},
		{"c", OpClear},
		{"CLEAR", OpClear},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Lookup(tt.token)
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	for _, token := range []string{"foo", "", "quit", "++", "hexadecimal"} {
		if _, err := Lookup(token); !errors.Is(err, ErrUnknownOperator) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownOperator", token, err)
		}
	}
}

func TestOp_IsBinary(t *testing.T) {
	binary := []Op{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulus, OpExponent, OpTheta, OpGCD, OpLCM}
	for _, op := range binary {
		if !op.IsBinary() {
			t.Errorf("%s.IsBinary() = false, want true", op)
		}
		if !op.IsComputation() {
			t.Errorf("%s.IsComputation() = false, want true", op)
		}
	}

	for _, op := range []Op{OpSquare, OpSin, OpFactorial, OpInverse, OpChangeBase, OpClear} {
		if op.IsBinary() {
			t.Errorf("%s.IsBinary() = true, want false", op)
		}
	}

	for _, op := range []Op{OpChangeBase, OpBinary, OpChangeUnits, OpMemorySave, OpMemoryRecall, OpClear} {
		if op.IsComputation() {
			t.Errorf("%s.IsComputation() = true, want false", op)
		}
	}
}

func TestOp_IsComputationMatchesCompute(t *testing.T) {
	seen := make(map[Op]bool)
	for _, op := range tokens {
		if seen[op] {
			continue
		}
		seen[op] = true

		_, err := Compute(op, 3, 2)
		computes := !errors.Is(err, ErrNotComputable)
		if got := op.IsComputation(); got != computes {
			t.Errorf("%s.IsComputation() = %v, but Compute error = %v", op, got, err)
		}
	}

	for _, op := range []Op{OpFactorial, OpSquare, OpSqrt, OpInverse, OpInvertSign} {
		if !op.IsComputation() {
			t.Errorf("%s.IsComputation() = false, want true", op)
		}
	}
}
