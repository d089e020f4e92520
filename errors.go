package intcalc

import (
	"strconv"
	"strings"
)

// SyntaxError is an error indicating an input that is not a well-formed
// expression. It implements InputError.
type SyntaxError struct {
	// Col is the 0-based column of the offending symbol in the input text.
	// For a missing operand at the end of the input, Col is the length of
	// the input.
	Col int
	// Msg describes the problem. Positions named in Msg are 1-based.
	Msg string
}

// Error returns Msg under a caret header: Col spaces, a caret, and a space,
// so that printing the input and then the error on the next line points the
// caret at the offending column.
func (err *SyntaxError) Error() string {
	return strings.Repeat(" ", err.Col) + "^ " + err.Msg
}

func (err *SyntaxError) Pos() int {
	return err.Col
}

// DomainError is an arithmetic error detected during evaluation: division
// or modulo by zero, or 0^0.
type DomainError struct {
	// Op is the operator whose operands were outside its domain.
	Op byte
	// Undef indicates the 0^0 case rather than a zero divisor.
	Undef bool
}

func (err *DomainError) Error() string {
	if err.Undef {
		return "Cannot evaluate expression, 0^0 is undefined."
	}
	return "Cannot evaluate expression, division by zero."
}

// pos1 renders a 0-based column as the 1-based position used in error
// message text.
func pos1(col int) string {
	return strconv.Itoa(col + 1)
}

// InputError is an error with position information. Every error resulting
// from invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 0-based column of the symbol that caused the error.
	Pos() int
}

var _ InputError = (*SyntaxError)(nil)
