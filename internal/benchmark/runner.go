package benchmark

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"accelbench/internal/algorithms"
	apperrors "accelbench/internal/errors"
)

// ErrReentrant is returned when Run is called while another Run on the same Runner is in progress.
var ErrReentrant = errors.New("benchmark runner is already running")

// Func is a benchmarkable callable over a single integer argument.
type Func func(arg int) (algorithms.Value, error)

// Clock measures elapsed wall time. Implementations must be monotonic.
type Clock interface {
	Now() time.Time
	Since(start time.Time) time.Duration
}

type systemClock struct{}

// time.Now carries a monotonic reading, so Since is immune to wall-clock jumps.
func (systemClock) Now() time.Time                      { return time.Now() }
func (systemClock) Since(start time.Time) time.Duration { return time.Since(start) }

// Observer receives measurements as they are produced. Calls happen outside
// the timed window.
type Observer interface {
	ObserveCall(name string, seconds float64)
	ObserveComparison(c *Comparison)
}

type nopObserver struct{}

func (nopObserver) ObserveCall(string, float64)   {}
func (nopObserver) ObserveComparison(*Comparison) {}

// Runner times callables synchronously.
type Runner struct {
	clock      Clock
	observer   Observer
	confidence float64
	running    bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithObserver attaches a measurement observer, e.g. Prometheus metrics.
func WithObserver(o Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithConfidence sets the confidence level of the median interval.
func WithConfidence(level float64) Option {
	return func(r *Runner) { r.confidence = level }
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		clock:      systemClock{},
		observer:   nopObserver{},
		confidence: DefaultConfidence,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run calls fn(arg) once untimed when warmup is set, then exactly iterations
// timed times. Errors from fn are returned unchanged and no Result is built.
// Every iteration must return an equal value; the last one is kept.
func (r *Runner) Run(name string, fn Func, arg, iterations int, warmup bool) (*Result, error) {
	if iterations < 1 {
		return nil, apperrors.NewArgumentError("Run", "iterations", iterations, "at least 1 iteration")
	}
	if fn == nil {
		return nil, fmt.Errorf("benchmark %q: nil function", name)
	}
	if r.running {
		return nil, fmt.Errorf("benchmark %q: %w", name, ErrReentrant)
	}
	r.running = true
	defer func() { r.running = false }()

	if warmup {
		if _, err := fn(arg); err != nil {
			return nil, err
		}
	}

	timings := make([]float64, 0, iterations)
	var first, last algorithms.Value
	for i := 0; i < iterations; i++ {
		start := r.clock.Now()
		v, err := fn(arg)
		elapsed := r.clock.Since(start)
		if err != nil {
			return nil, err
		}

		if i == 0 {
			first = v
		} else if !valuesEqual(first, v) {
			return nil, fmt.Errorf("benchmark %q iteration %d: %w", name, i+1, apperrors.ErrInconsistentResult)
		}
		last = v

		seconds := elapsed.Seconds()
		timings = append(timings, seconds)
		r.observer.ObserveCall(name, seconds)
	}

	s := describe(timings, r.confidence)
	res := &Result{
		Name:       name,
		Result:     last,
		Iterations: iterations,
		Warmup:     warmup,
		Timings:    timings,
		Mean:       s.mean,
		Median:     s.median,
		Min:        s.min,
		Max:        s.max,
		Stdev:      s.stdev,
		CILow:      s.ciLow,
		CIHigh:     s.ciHigh,
		Confidence: r.confidence,
	}

	slog.Debug("Benchmark finished",
		"name", name,
		"arg", arg,
		"iterations", iterations,
		"mean_seconds", res.Mean,
		"stdev_seconds", res.Stdev)

	return res, nil
}

func valuesEqual(a, b algorithms.Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}
