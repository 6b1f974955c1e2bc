// Package calc is the compute collaborator of the calculator: it owns the
// operator vocabulary, evaluates single operations and renders numbers the
// way the calculator displays them.
package calc

import (
	"fmt"
	"strings"
)

// Op identifies one entry of the operator vocabulary
type Op string

const (
	OpAdd        Op = "add"
	OpSubtract   Op = "subtract"
	OpDivide     Op = "divide"
	OpMultiply   Op = "multiply"
	OpModulus    Op = "modulus"
	OpExponent   Op = "exponent"
	OpSquare     Op = "square"
	OpSin        Op = "sin"
	OpAsin       Op = "asin"
	OpSinh       Op = "sinh"
	OpCos        Op = "cos"
	OpAcos       Op = "acos"
	OpCosh       Op = "cosh"
	OpTan        Op = "tan"
	OpAtan       Op = "atan"
	OpTanh       Op = "tanh"
	OpTheta      Op = "theta"
	OpSqrt       Op = "sqrt"
	OpCbrt       Op = "cbrt"
	OpInverse    Op = "inverse"
	OpInvertSign Op = "invertsign"
	OpFactorial  Op = "factorial"
	OpGCD        Op = "gcd"
	OpLCM        Op = "lcm"

	// Session operators: they act on display, mode or memory and never
	// reach Compute.
	OpChangeBase   Op = "changebase"
	OpBinary       Op = "binary"
	OpOctal        Op = "octal"
	OpHex          Op = "hex"
	OpChangeUnits  Op = "changeunits"
	OpDegrees      Op = "degrees"
	OpRadians      Op = "radians"
	OpMemorySave   Op = "m+"
	OpMemoryReset  Op = "m-"
	OpMemoryRecall Op = "mrc"
	OpClear        Op = "clear"
)

// tokens maps every accepted (lower-case) spelling to its operator
var tokens = map[string]Op{
	"+":    OpAdd,
	"add":  OpAdd,
	"sum":  OpAdd,
	"plus": OpAdd,

	"-":        OpSubtract,
	"subtract": OpSubtract,
	"minus":    OpSubtract,

	"/":          OpDivide,
	"divide":     OpDivide,
	"divided by": OpDivide,

	"*":        OpMultiply,
	"times":    OpMultiply,
	"multiply": OpMultiply,

	"%":         OpModulus,
	"mod":       OpModulus,
	"remainder": OpModulus,

	"^x": OpExponent,
	"^":  OpExponent,
	"^2": OpSquare,

	"sin":  OpSin,
	"asin": OpAsin,
	"sinh": OpSinh,
	"cos":  OpCos,
	"acos": OpAcos,
	"cosh": OpCosh,
	"tan":  OpTan,
	"atan": OpAtan,
	"tanh": OpTanh,

	"theta": OpTheta,

	"sqrt":        OpSqrt,
	"root":        OpSqrt,
	"square root": OpSqrt,
	"cbrt":        OpCbrt,

	"changebase": OpChangeBase,
	"binary":     OpBinary,
	"octal":      OpOctal,
	"hex":        OpHex,

	"m+":  OpMemorySave,
	"m-":  OpMemoryReset,
	"mrc": OpMemoryRecall,

	"changeunits": OpChangeUnits,
	"degrees":     OpDegrees,
	"radians":     OpRadians,

	"inverse":    OpInverse,
	"1/x":        OpInverse,
	"invertsign": OpInvertSign,
	"factorial":  OpFactorial,
	"!":          OpFactorial,

	"gcd": OpGCD,
	"lcm": OpLCM,

	"clear": OpClear,
	"c":     OpClear,
}

// Lookup case-folds token and returns the operator it selects.
// Unknown tokens yield an error wrapping ErrUnknownOperator.
func Lookup(token string) (Op, error) {
	op, ok := tokens[strings.ToLower(token)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperator, token)
	}
	return op, nil
}

// IsBinary reports whether op needs a second operand
func (op Op) IsBinary() bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulus,
		OpExponent, OpTheta, OpGCD, OpLCM:
		return true
	}
	return false
}

// IsComputation reports whether op is evaluated by Compute
func (op Op) IsComputation() bool {
	if _, ok := unary[op]; ok || op.IsBinary() {
		return true
	}
	switch op {
	case OpSquare, OpFactorial:
		return true
	}
	return false
}
