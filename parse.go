package intcalc

import "strings"

// Expr is a validated expression. The zero value is not useful; obtain an
// Expr from Parse.
type Expr struct {
	// display is the text exactly as the user wrote it.
	display string
	// internal is the same text with each negation minus sign replaced by
	// unaryMark, so the conversion and evaluation stages never confuse
	// negation with subtraction. It is the same length as display, so
	// columns in one index the other.
	internal string
}

// Parse scans, disambiguates unary minus signs, and validates src. If src
// is not a well-formed expression, the returned error is a *SyntaxError
// whose message carets the offending column of src.
func Parse(src string) (*Expr, error) {
	e, err := scan(src)
	if err != nil {
		return nil, err
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// Input returns the expression as the user wrote it.
func (e *Expr) Input() string {
	return e.display
}

// scan builds the internal text. A minus sign is negation wherever an
// operand is expected: at the start of the input and after (, another
// negation, or any binary operator. The scan always runs to completion and
// reports only the first invalid symbol.
func scan(src string) (*Expr, error) {
	var internal strings.Builder
	internal.Grow(len(src))
	var err *SyntaxError
	operand := true // an operand may appear next
	for i := 0; i < len(src); i++ {
		c := src[i]
		if isSpace(c) {
			internal.WriteByte(c)
			continue
		}
		if !isDigit(c) && !isBinaryOp(c) && !isParen(c) && err == nil {
			err = &SyntaxError{Col: i, Msg: "Unexpected symbol '" + string(c) + "' found at position " + pos1(i) + "."}
		}
		w := c
		if operand && c == '-' {
			w = unaryMark
		}
		operand = c == '(' || isBinaryOp(c)
		internal.WriteByte(w)
	}
	e := &Expr{display: src, internal: internal.String()}
	if err != nil {
		return nil, err
	}
	return e, nil
}
