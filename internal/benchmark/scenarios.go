package benchmark

import (
	"fmt"
	"strings"

	"accelbench/internal/algorithms"
)

// Kind names one of the four benchmarked algorithms.
type Kind string

const (
	KindSum       Kind = "sum"
	KindFibonacci Kind = "fibonacci"
	KindPrime     Kind = "prime"
	KindMatrix    Kind = "matrix"
)

var kindAliases = map[string]Kind{
	"sum":            KindSum,
	"squares":        KindSum,
	"sum_of_squares": KindSum,
	"fib":            KindFibonacci,
	"fibonacci":      KindFibonacci,
	"prime":          KindPrime,
	"primes":         KindPrime,
	"prime_count":    KindPrime,
	"matrix":         KindMatrix,
	"mult":           KindMatrix,
	"matmul":         KindMatrix,
}

// ParseKind resolves a case-insensitive kind name or alias.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want sum, fibonacci, prime or matrix)", s)
}

// Title is the human-readable algorithm name.
func (k Kind) Title() string {
	switch k {
	case KindSum:
		return "Sum of Squares"
	case KindFibonacci:
		return "Fibonacci"
	case KindPrime:
		return "Prime Count"
	case KindMatrix:
		return "Matrix Mult"
	default:
		return string(k)
	}
}

// Scenario is one comparison of the analysis.
type Scenario struct {
	Task       string `json:"task" yaml:"task" toml:"task"`
	Kind       Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Arg        int    `json:"arg" yaml:"arg" toml:"arg"`
	Iterations int    `json:"iterations,omitempty" yaml:"iterations,omitempty" toml:"iterations"` // 0 uses the analyzer default
}

// Validate checks the scenario and fills in a task name when missing.
func (s *Scenario) Validate() error {
	k, err := ParseKind(string(s.Kind))
	if err != nil {
		return err
	}
	s.Kind = k
	if s.Arg < 0 {
		return fmt.Errorf("scenario %q: arg must be non-negative, got %d", s.Task, s.Arg)
	}
	if s.Iterations < 0 {
		return fmt.Errorf("scenario %q: iterations must be positive, got %d", s.Task, s.Iterations)
	}
	if s.Task == "" {
		s.Task = TaskName(s.Kind, s.Arg)
	}
	return nil
}

// TaskName builds a label such as "Prime Count (n=10K)" or "Matrix Mult (100x100)".
func TaskName(k Kind, arg int) string {
	if k == KindMatrix {
		return fmt.Sprintf("%s (%dx%d)", k.Title(), arg, arg)
	}
	return fmt.Sprintf("%s (n=%s)", k.Title(), shortCount(arg))
}

func shortCount(n int) string {
	switch {
	case n >= 1_000_000 && n%1_000_000 == 0:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n >= 1_000 && n%1_000 == 0:
		return fmt.Sprintf("%dK", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// DefaultScenarios is the comprehensive analysis at increasing sizes.
func DefaultScenarios() []Scenario {
	specs := []struct {
		kind Kind
		args []int
	}{
		{KindSum, []int{1_000, 10_000, 100_000, 1_000_000}},
		{KindFibonacci, []int{25, 30, 35}},
		{KindPrime, []int{1_000, 10_000, 50_000}},
		{KindMatrix, []int{50, 100, 200}},
	}

	var out []Scenario
	for _, s := range specs {
		for _, arg := range s.args {
			out = append(out, Scenario{Task: TaskName(s.kind, arg), Kind: s.kind, Arg: arg})
		}
	}
	return out
}

// Optimization compares a naive algorithm with its alternative on one suite.
type Optimization struct {
	Task                string
	Kind                Kind
	Arg                 int
	BaselineIterations  int
	OptimizedIterations int
}

// DefaultOptimizations pairs each algorithm that has an alternative form with a size
// where the difference is visible.
func DefaultOptimizations() []Optimization {
	return []Optimization{
		{Task: "Sum of Squares Optimization", Kind: KindSum, Arg: 1_000_000, BaselineIterations: 5, OptimizedIterations: 5},
		{Task: "Prime Count Algorithm Comparison", Kind: KindPrime, Arg: 100_000, BaselineIterations: 5, OptimizedIterations: 5},
		{Task: "Fibonacci Memoization", Kind: KindFibonacci, Arg: 30, BaselineIterations: 1, OptimizedIterations: 5},
	}
}

// SuiteFunc adapts the suite method for k to a Func.
func SuiteFunc(s algorithms.Suite, k Kind) (Func, error) {
	if s == nil {
		return nil, nil
	}
	switch k {
	case KindSum:
		return scalarFunc(s.SumOfSquares), nil
	case KindFibonacci:
		return scalarFunc(s.Fibonacci), nil
	case KindPrime:
		return scalarFunc(s.PrimeCount), nil
	case KindMatrix:
		return func(arg int) (algorithms.Value, error) {
			m, err := s.MatrixMultiply(arg)
			if err != nil {
				return nil, err
			}
			return m, nil
		}, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q", k)
	}
}

// OptimizedFunc adapts the alternative algorithm for k. Matrix multiplication has none.
func OptimizedFunc(o algorithms.Optimizer, k Kind) (Func, error) {
	switch k {
	case KindSum:
		return scalarFunc(o.SumOfSquaresOptimized), nil
	case KindFibonacci:
		return scalarFunc(o.FibonacciMemoized), nil
	case KindPrime:
		return scalarFunc(o.PrimeCountSieve), nil
	default:
		return nil, fmt.Errorf("no optimized alternative for %q", k)
	}
}

func scalarFunc(f func(int) (int64, error)) Func {
	return func(arg int) (algorithms.Value, error) {
		v, err := f(arg)
		if err != nil {
			return nil, err
		}
		return algorithms.Scalar(v), nil
	}
}
