package calc

import (
	"fmt"
	"math"
)

// unary holds the single-operand operations
var unary = map[Op]func(float64) float64{
	OpSin:        math.Sin,
	OpAsin:       math.Asin,
	OpSinh:       math.Sinh,
	OpCos:        math.Cos,
	OpAcos:       math.Acos,
	OpCosh:       math.Cosh,
	OpTan:        math.Tan,
	OpAtan:       math.Atan,
	OpTanh:       math.Tanh,
	OpSqrt:       math.Sqrt,
	OpCbrt:       math.Cbrt,
	OpInverse:    func(x float64) float64 { return 1 / x },
	OpInvertSign: func(x float64) float64 { return -x },
}

// Compute evaluates op against the accumulator x and, for binary operators,
// the second operand y. y is ignored by unary operators.
func Compute(op Op, x, y float64) (float64, error) {
	if fn, ok := unary[op]; ok {
		return fn(x), nil
	}

	switch op {
	case OpAdd:
		return x + y, nil
	case OpSubtract:
		return x - y, nil
	case OpMultiply:
		return x * y, nil
	case OpDivide:
		if y == 0 {
			return 0, ErrDivideByZero
		}
		return x / y, nil
	case OpModulus:
		return math.Mod(x, y), nil
	case OpExponent:
		return math.Pow(x, y), nil
	case OpSquare:
		return math.Pow(x, 2), nil
	case OpTheta:
		return Theta(y, x), nil
	case OpFactorial:
		return Factorial(x)
	case OpGCD:
		return GCD(x, y), nil
	case OpLCM:
		return LCM(x, y), nil
	}

	return 0, fmt.Errorf("%w: %s", ErrNotComputable, op)
}

// Theta returns the angle between the x axis and the point (x, y).
// The calculator calls it with the operands swapped: Theta(second, accumulator).
func Theta(x, y float64) float64 {
	return math.Atan2(y, x)
}

// Factorial multiplies 1..floor(x). Fractional input is truncated rather than
// rejected, so Factorial(4.7) == 24.
func Factorial(x float64) (float64, error) {
	if x < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegativeFactorial, FormatNumber(x))
	}

	f := 1.0
	for i := 1; float64(i) <= x; i++ {
		f *= float64(i)
		if math.IsInf(f, 1) {
			break
		}
	}
	return f, nil
}

// GCD is Euclid's algorithm over float64 remainders. It stops when the
// remainder is exactly 0; a NaN remainder ends it with NaN.
func GCD(x, y float64) float64 {
	for y != 0 {
		if math.IsNaN(y) {
			return math.NaN()
		}
		x, y = y, math.Mod(x, y)
	}
	return x
}

// LCM returns x * (y / gcd(x, y))
func LCM(x, y float64) float64 {
	return x * (y / GCD(x, y))
}
