package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/intcalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname  string
		postfix bool
	)
	flag.StringVar(&inname, "in", "", "input file of expressions, one per line (default stdin if no args given)")
	flag.BoolVar(&postfix, "postfix", true, "print the postfix form of each expression")
	flag.Parse()

	if flag.NArg() > 0 {
		// The whole argument list is one expression, so quoting is optional.
		os.Exit(run(strings.Join(flag.Args(), " "), postfix))
	}

	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		f = in
	}
	code := 0
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		if c := run(line, postfix); c != 0 {
			code = c
		}
	}
	if err := scan.Err(); err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

// run evaluates one expression and prints its postfix form and value. A
// syntax error prints the expression above the caret message so the caret
// points into it.
func run(src string, postfix bool) int {
	e, err := intcalc.Parse(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, src)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	p := e.Postfix()
	if postfix {
		fmt.Println("Postfix expression:", p)
	}
	r, err := p.Eval()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	fmt.Println("Evaluation:        ", r)
	return 0
}
