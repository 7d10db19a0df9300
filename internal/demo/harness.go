package demo

import (
	"fmt"
	"io"
	"strings"

	"accelbench/internal/algorithms"
	"accelbench/internal/benchmark"

	"github.com/dustin/go-humanize"
)

var alternativeLabel = map[benchmark.Kind]string{
	benchmark.KindSum:       "closed form",
	benchmark.KindFibonacci: "memoized",
	benchmark.KindPrime:     "sieve",
}

// Harness runs demos and prints a side-by-side comparison for each.
type Harness struct {
	out         io.Writer
	reference   algorithms.Suite
	accelerated algorithms.Suite
	runner      *benchmark.Runner
}

// NewHarness builds a harness. A nil accelerated suite prints reference results only.
func NewHarness(out io.Writer, reference, accelerated algorithms.Suite, runner *benchmark.Runner) *Harness {
	if reference == nil {
		reference = algorithms.Reference()
	}
	if runner == nil {
		runner = benchmark.NewRunner()
	}
	return &Harness{out: out, reference: reference, accelerated: accelerated, runner: runner}
}

// RunAll runs each demo in order and stops at the first error.
func (h *Harness) RunAll(demos []Demo) error {
	for _, d := range demos {
		if err := h.Run(d); err != nil {
			return err
		}
	}
	return nil
}

// Run times one call of every available variant of d.
func (h *Harness) Run(d Demo) error {
	rule := strings.Repeat("=", 50)
	fmt.Fprintf(h.out, "\n%s\n%s DEMO\n%s\n", rule, strings.ToUpper(d.Title), rule)
	fmt.Fprintf(h.out, d.Intro+"\n", humanize.Comma(int64(d.Arg)))

	ref, err := h.time(d, "reference", h.reference, nil)
	if err != nil {
		return err
	}
	h.printResult("Reference", d, ref)

	if h.accelerated == nil {
		return nil
	}

	acc, err := h.time(d, "accelerated", h.accelerated, nil)
	if err != nil {
		return err
	}
	h.printResult("Accelerated", d, acc)
	if !acc.Result.Equal(ref.Result) {
		fmt.Fprintf(h.out, "WARNING: results differ between implementations\n")
	}

	var alt *benchmark.Result
	if opt, ok := h.accelerated.(algorithms.Optimizer); ok {
		if label, ok := alternativeLabel[d.Kind]; ok {
			fn, err := benchmark.OptimizedFunc(opt, d.Kind)
			if err != nil {
				return err
			}
			alt, err = h.time(d, label, nil, fn)
			if err != nil {
				return err
			}
			h.printResult(strings.ToUpper(label[:1])+label[1:], d, alt)
		}
	}

	fmt.Fprintln(h.out)
	h.printSpeedup(ref, acc, "accelerated")
	if alt != nil {
		h.printSpeedup(ref, alt, alternativeLabel[d.Kind])
	}
	return nil
}

// time runs the suite method for d, or fn when given, once through the runner.
func (h *Harness) time(d Demo, variant string, suite algorithms.Suite, fn benchmark.Func) (*benchmark.Result, error) {
	if fn == nil {
		var err error
		if fn, err = benchmark.SuiteFunc(suite, d.Kind); err != nil {
			return nil, err
		}
	}
	return h.runner.Run(fmt.Sprintf("%s demo (%s)", d.Key, variant), fn, d.Arg, 1, false)
}

func (h *Harness) printResult(label string, d Demo, r *benchmark.Result) {
	fmt.Fprintf(h.out, "%-12s %s (took %.6fs)\n", label+":", formatValue(d.Kind, r.Result), r.Mean)
}

func (h *Harness) printSpeedup(ref, other *benchmark.Result, label string) {
	if other.Mean <= 0 {
		fmt.Fprintf(h.out, "Speedup: too fast to measure with %s\n", label)
		return
	}
	fmt.Fprintf(h.out, "Speedup: %.1fx faster with %s\n", ref.Mean/other.Mean, label)
}

func formatValue(k benchmark.Kind, v algorithms.Value) string {
	switch val := v.(type) {
	case algorithms.Scalar:
		s := humanize.Comma(int64(val))
		if k == benchmark.KindPrime {
			s += " primes"
		}
		return s
	case algorithms.Matrix:
		if val.Size() == 0 {
			return "empty matrix"
		}
		return fmt.Sprintf("first element = %d", val.At(0, 0))
	default:
		return fmt.Sprint(v)
	}
}
