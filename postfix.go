package intcalc

import "strings"

// Postfix is the postfix (reverse Polish) form of a validated expression:
// numerals and operators separated by single spaces. Negation is rendered
// as the ~ marker rather than a minus sign; that rendering is part of the
// output format.
type Postfix struct {
	tokens string
}

// String returns the space-separated postfix token text.
func (p Postfix) String() string {
	return p.tokens
}

// Postfix converts the expression to postfix form with the shunting-yard
// algorithm. Numerals go straight to the output; operators wait on a stack
// until an operator that binds no tighter arrives.
func (e *Expr) Postfix() Postfix {
	var out strings.Builder
	var ops stack[byte]
	src := e.internal
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case isDigit(c):
			j := i + 1
			for j < len(src) && isDigit(src[j]) {
				j++
			}
			emit(&out, src[i:j])
			i = j - 1
		case c == '(':
			ops.push(c)
		case c == ')':
			for !ops.empty() && ops.peek() != '(' {
				emit(&out, string(ops.pop()))
			}
			ops.pop() // discard the ( itself
		case isUnaryOp(c):
			// ~ outranks every binary operator and takes exactly one
			// operand, so it never forces pops.
			ops.push(c)
		case isBinaryOp(c):
			// Right-associative operators do not pop each other: the
			// earlier ^ of a ^ chain stays on the stack until the chain
			// unwinds, grouping right to left.
			tie := !leftAssoc(c) && !ops.empty() && !leftAssoc(ops.peek())
			if !tie {
				for !ops.empty() && isOp(ops.peek()) && precedence(c) <= precedence(ops.peek()) {
					emit(&out, string(ops.pop()))
				}
			}
			ops.push(c)
		}
	}
	for !ops.empty() {
		emit(&out, string(ops.pop()))
	}
	return Postfix{tokens: out.String()}
}

// emit appends one token to the output, preceded by a separator unless it
// is the first.
func emit(b *strings.Builder, tok string) {
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(tok)
}
