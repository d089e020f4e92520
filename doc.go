// Package intcalc implements an integer-only infix calculator.
//
// An expression is built from decimal numerals, the binary operators
// + - x / % ^ (x is multiplication, ^ is exponentiation and groups to the
// right), unary negation, and parentheses. Parse validates an expression
// and reports the first problem found with a caret pointing at the
// offending column. A validated expression converts to postfix form, and
// the postfix form evaluates to an exact arbitrary-precision integer:
// division truncates toward zero, remainders take the sign of the dividend,
// and dividing by zero or raising 0 to the 0 is a domain error rather than
// a value.
package intcalc
