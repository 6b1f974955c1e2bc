package repl

import (
	"fmt"

	"github.com/itsmostafa/gocalc/internal/calc"
)

// equation renders the line printed after a successful computation. token is
// the case-folded operator the user typed; unary functions echo it.
func equation(op calc.Op, token string, x, y, result float64) string {
	xs, ys, rs := calc.FormatNumber(x), calc.FormatNumber(y), calc.FormatNumber(result)

	switch op {
	case calc.OpAdd:
		return fmt.Sprintf("%s + %s = %s", xs, ys, rs)
	case calc.OpSubtract:
		return fmt.Sprintf("%s - %s = %s", xs, ys, rs)
	case calc.OpMultiply:
		return fmt.Sprintf("%s * %s = %s", xs, ys, rs)
	case calc.OpDivide:
		return fmt.Sprintf("%s / %s = %s", xs, ys, rs)
	case calc.OpModulus:
		return fmt.Sprintf("%s %% %s = %s", xs, ys, rs)
	case calc.OpExponent:
		return fmt.Sprintf("%s ^ %s = %s", xs, ys, rs)
	case calc.OpSquare:
		return fmt.Sprintf("%s ^2 = %s", xs, rs)
	case calc.OpTheta:
		return fmt.Sprintf("%s theta %s = %s", xs, ys, rs)
	case calc.OpInverse:
		return fmt.Sprintf("1 / %s = %s", xs, rs)
	case calc.OpFactorial:
		return fmt.Sprintf("%s! = %s", xs, rs)
	case calc.OpGCD:
		return fmt.Sprintf("gcd(%s, %s) = %s", xs, ys, rs)
	case calc.OpLCM:
		return fmt.Sprintf("lcm(%s, %s) = %s", xs, ys, rs)
	default:
		return fmt.Sprintf("%s %s = %s", token, xs, rs)
	}
}
