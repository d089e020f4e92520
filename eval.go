package intcalc

import (
	"math/big"
	"strconv"
	"strings"
)

// Eval reduces the postfix token stream to a single integer. Arithmetic is
// exact: operands are arbitrary-precision integers, division truncates
// toward zero, and remainders take the sign of the dividend. Division or
// modulo by zero and 0^0 return a *DomainError.
func (p Postfix) Eval() (*big.Int, error) {
	if !strings.ContainsRune(p.tokens, ' ') {
		// A lone token is always a numeral.
		return parseNum(p.tokens), nil
	}
	var st stack[*big.Int]
	for _, tok := range strings.Fields(p.tokens) {
		switch c := tok[0]; {
		case isDigit(c):
			st.push(parseNum(tok))
		case isUnaryOp(c):
			n := st.pop()
			st.push(n.Neg(n))
		default:
			// Binary operator. The top of the stack is the right operand.
			r := st.pop()
			l := st.pop()
			v, err := apply(c, l, r)
			if err != nil {
				return nil, err
			}
			st.push(v)
		}
	}
	return st.pop(), nil
}

// EvalString is a shortcut to parse, convert, and evaluate an expression.
func EvalString(src string) (*big.Int, error) {
	e, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return e.Postfix().Eval()
}

// apply computes l op r.
func apply(op byte, l, r *big.Int) (*big.Int, error) {
	switch op {
	case '+':
		return new(big.Int).Add(l, r), nil
	case '-':
		return new(big.Int).Sub(l, r), nil
	case 'x':
		return new(big.Int).Mul(l, r), nil
	case '/':
		if r.Sign() == 0 {
			return nil, &DomainError{Op: op}
		}
		return new(big.Int).Quo(l, r), nil
	case '%':
		if r.Sign() == 0 {
			return nil, &DomainError{Op: op}
		}
		return new(big.Int).Rem(l, r), nil
	case '^':
		return ipow(l, r)
	}
	panic("intcalc: invalid operator " + strconv.QuoteRune(rune(op)))
}

// ipow raises l to the power r exactly. A negative exponent truncates the
// reciprocal toward zero, so the result is 0 unless |l| is 1; 0 raised to a
// negative power is a division by zero.
func ipow(l, r *big.Int) (*big.Int, error) {
	if r.Sign() >= 0 {
		if l.Sign() == 0 && r.Sign() == 0 {
			return nil, &DomainError{Op: '^', Undef: true}
		}
		return new(big.Int).Exp(l, r, nil), nil
	}
	switch {
	case l.Sign() == 0:
		return nil, &DomainError{Op: '^'}
	case l.CmpAbs(bigOne) == 0:
		// (±1)^-k is its own reciprocal, so only exponent parity matters.
		return new(big.Int).Exp(l, new(big.Int).Abs(r), nil), nil
	default:
		return new(big.Int), nil
	}
}

var bigOne = big.NewInt(1)

// parseNum parses a numeral token. Tokens reaching here are all digits by
// construction, so parsing cannot fail.
func parseNum(tok string) *big.Int {
	n, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		panic("intcalc: invalid numeral " + strconv.Quote(tok))
	}
	return n
}
