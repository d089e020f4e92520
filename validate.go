package intcalc

// validate checks the internal text for well-formedness in one left-to-right
// pass: operands and binary operators must alternate, parentheses must
// balance, and no operator may dangle. The first violation found is
// returned as a *SyntaxError and no later one replaces it.
func (e *Expr) validate() error {
	// parens holds the columns of open parentheses awaiting a match.
	var parens stack[int]
	var (
		operand = true  // an operand must appear before any binary operator
		grouped = false // a completed operand group precedes the cursor
		binSeen = false // a binary operator was seen since the last operand
		numLen  = 0     // digits in the operand group under the cursor
	)
	src := e.internal
	for i := 0; i < len(src); i++ {
		c := src[i]
		if isSpace(c) {
			if numLen > 0 {
				grouped = true
				numLen = 0
			}
			continue
		}
		isBin, isOperand := isBinaryOp(c), isDigit(c)
		switch {
		case isOperand:
			// Two operand groups with nothing between them, like "2 3".
			if grouped && !binSeen {
				return &SyntaxError{Col: i, Msg: "Expected operator at position " + pos1(i) + "."}
			}
			numLen++
			binSeen = false
		case isBin:
			binSeen = true
			grouped = false
		}
		if c == ')' || isBin {
			if operand {
				return &SyntaxError{Col: i, Msg: "Expected operand, but found '" + string(c) + "' at position " + pos1(i) + "."}
			}
		} else if !isOperand && !operand {
			return &SyntaxError{Col: i, Msg: "Expected operator, but found '" + string(c) + "' at position " + pos1(i) + "."}
		}
		switch c {
		case '(':
			parens.push(i)
		case ')':
			if parens.empty() {
				return &SyntaxError{Col: i, Msg: "Unmatched ')' found at position " + pos1(i) + "."}
			}
			parens.pop()
			binSeen = false
			grouped = true
		}
		operand = isBin || isUnaryOp(c) || c == '('
	}
	if operand {
		return &SyntaxError{Col: len(src), Msg: "Missing operand at position " + pos1(len(src)) + "."}
	}
	if !parens.empty() {
		// Report the innermost unmatched paren, the one nearest the end.
		col := parens.pop()
		return &SyntaxError{Col: col, Msg: "Unmatched '(' found at position " + pos1(col) + "."}
	}
	return nil
}
