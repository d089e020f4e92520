package intcalc

// unaryMark is the internal stand-in for a minus sign used as negation. It
// never appears in display text, but it does appear in postfix output.
const unaryMark = '~'

// Operator precedences. Higher binds tighter. Negation outranks every
// binary operator so that it always applies to exactly one operand.
const (
	precNone  = -1
	precAdd   = 1 // + -
	precMul   = 2 // x / %
	precPow   = 3 // ^
	precUnary = 4 // ~
)

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// isSpace reports whether c is a space, tab, or newline, the only
// whitespace an expression may contain.
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' }

func isParen(c byte) bool { return c == '(' || c == ')' }

func isBinaryOp(c byte) bool {
	switch c {
	case '+', '-', 'x', '/', '%', '^':
		return true
	}
	return false
}

func isUnaryOp(c byte) bool { return c == unaryMark }

func isOp(c byte) bool { return isBinaryOp(c) || isUnaryOp(c) }

// precedence returns the precedence of an operator, or precNone if c is not
// an operator.
func precedence(c byte) int {
	switch c {
	case unaryMark:
		return precUnary
	case '^':
		return precPow
	case 'x', '/', '%':
		return precMul
	case '+', '-':
		return precAdd
	}
	return precNone
}

// leftAssoc reports whether an operator is left-associative. Only ^ is
// right-associative.
func leftAssoc(c byte) bool { return c != '^' }
