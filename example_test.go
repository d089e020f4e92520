package intcalc_test

import (
	"fmt"

	"github.com/zephyrtronium/intcalc"
)

func ExampleEvalString() {
	r, _ := intcalc.EvalString("(2 x 3) ^ 2")
	fmt.Println(r)
	// Output:
	// 36
}

func ExampleParse() {
	e, _ := intcalc.Parse("2 ^ 3 ^ 2")
	fmt.Println(e.Postfix())

	_, err := intcalc.Parse("1 + 2)")
	fmt.Println(err)
	// Output:
	// 2 3 2 ^ ^
	//      ^ Unmatched ')' found at position 6.
}
