package calc

import "errors"

var (
	// ErrNotNumeric is returned when text cannot be read as a number
	ErrNotNumeric = errors.New("not a numerical value")

	// ErrDivideByZero is returned for a division whose divisor is exactly 0
	ErrDivideByZero = errors.New("cannot divide by 0")

	// ErrUnknownOperator is returned for tokens outside the vocabulary
	ErrUnknownOperator = errors.New("not a proper operator")

	// ErrNegativeFactorial is returned for the factorial of a negative value
	ErrNegativeFactorial = errors.New("factorial is undefined for negative values")

	// ErrNotComputable is returned when Compute is handed a session operator
	ErrNotComputable = errors.New("operator does not compute a value")
)
