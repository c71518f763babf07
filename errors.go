package math256

import "errors"

// Every failure here is deterministic and input-triggered: re-invoking with
// the same arguments always reproduces the same outcome.
var (
	// ErrDivisionByZero is returned when a divisor or denominator is zero.
	ErrDivisionByZero = errors.New("math256: division by zero")

	// ErrOverflow is returned when the mathematical result does not fit the
	// 256-bit word.
	ErrOverflow = errors.New("math256: overflow")

	// ErrUndefined is returned when the operation is mathematically
	// undefined for the given input.
	ErrUndefined = errors.New("math256: undefined")
)
