package demo

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"accelbench/internal/benchmark"
)

// ErrUnknownDemo is returned by Lookup for an unrecognized selector.
var ErrUnknownDemo = errors.New("unknown demo")

// Demo is a single side-by-side run of one algorithm at a fixed size.
type Demo struct {
	Key   string
	Title string
	Kind  benchmark.Kind
	Arg   int
	Intro string
}

// Demos lists the demos in menu order.
var Demos = []Demo{
	{Key: "sum", Title: "Sum of Squares", Kind: benchmark.KindSum, Arg: 100_000, Intro: "Calculating sum of squares from 1 to %s"},
	{Key: "fibonacci", Title: "Fibonacci", Kind: benchmark.KindFibonacci, Arg: 35, Intro: "Calculating Fibonacci number #%s"},
	{Key: "prime", Title: "Prime Count", Kind: benchmark.KindPrime, Arg: 10_000, Intro: "Counting prime numbers up to %s"},
	{Key: "matrix", Title: "Matrix Multiplication", Kind: benchmark.KindMatrix, Arg: 100, Intro: "Multiplying two %[1]sx%[1]s matrices"},
}

var selectors = map[string][]int{
	"sum":       {0},
	"squares":   {0},
	"fib":       {1},
	"fibonacci": {1},
	"prime":     {2},
	"primes":    {2},
	"matrix":    {3},
	"mult":      {3},
	"all":       {0, 1, 2, 3},
	"demo":      {0, 1, 2, 3},
}

// Selectors returns every accepted selector, sorted.
func Selectors() []string {
	out := make([]string, 0, len(selectors))
	for k := range selectors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a case-insensitive selector to the demos it runs.
func Lookup(selector string) ([]Demo, error) {
	idx, ok := selectors[strings.ToLower(strings.TrimSpace(selector))]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: sum, fibonacci, prime, matrix, all)", ErrUnknownDemo, selector)
	}
	out := make([]Demo, len(idx))
	for i, j := range idx {
		out[i] = Demos[j]
	}
	return out, nil
}

// Choice is one entry of the numbered menu.
type Choice struct {
	Key   string
	Label string
	Demos []Demo
}

// Choices is the numbered menu: 1-4 single demos, 5 all, 0 exit.
func Choices() []Choice {
	out := make([]Choice, 0, len(Demos)+2)
	for i, d := range Demos {
		out = append(out, Choice{Key: fmt.Sprint(i + 1), Label: d.Title, Demos: []Demo{d}})
	}
	out = append(out, Choice{Key: "5", Label: "Run All Demos", Demos: append([]Demo(nil), Demos...)})
	out = append(out, Choice{Key: "0", Label: "Exit"})
	return out
}

// ParseChoice maps menu input to a choice. Exit is the choice with no demos.
func ParseChoice(input string) (Choice, bool) {
	input = strings.TrimSpace(input)
	for _, c := range Choices() {
		if c.Key == input {
			return c, true
		}
	}
	return Choice{}, false
}
