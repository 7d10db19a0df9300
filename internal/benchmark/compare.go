package benchmark

import (
	"fmt"
	"log/slog"
	"sort"

	apperrors "accelbench/internal/errors"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Comparator benchmarks reference and accelerated callables on identical input.
type Comparator struct {
	runner *Runner
	warmup bool
}

func NewComparator(runner *Runner, warmup bool) *Comparator {
	if runner == nil {
		runner = NewRunner()
	}
	return &Comparator{runner: runner, warmup: warmup}
}

// Compare always benchmarks reference. When accelerated is nil the record has
// no accelerated result, speedup, match flag or p-value. A result mismatch is
// recorded and logged, never returned.
func (c *Comparator) Compare(task string, reference, accelerated Func, arg, iterations int) (*Comparison, error) {
	ref, err := c.runner.Run(task+" (reference)", reference, arg, iterations, c.warmup)
	if err != nil {
		return nil, err
	}

	cmp := &Comparison{
		Task:       task,
		Arg:        arg,
		Iterations: iterations,
		Reference:  ref,
	}

	if accelerated == nil {
		slog.Debug("Accelerated implementation absent, reference only", "task", task)
		c.runner.observer.ObserveComparison(cmp)
		return cmp, nil
	}

	acc, err := c.runner.Run(task+" (accelerated)", accelerated, arg, iterations, c.warmup)
	if err != nil {
		return nil, err
	}
	cmp.Accelerated = acc

	match := valuesEqual(ref.Result, acc.Result)
	cmp.ResultsMatch = &match
	if !match {
		slog.Warn("Results differ between implementations",
			"task", task,
			"reference", fmt.Sprint(ref.Result),
			"accelerated", fmt.Sprint(acc.Result),
			"error", apperrors.ErrResultMismatch)
	}

	if s, ok := speedup(ref.Mean, acc.Mean); ok {
		improvement := (s - 1) * 100
		cmp.Speedup = &s
		cmp.ImprovementPercent = &improvement
	}
	if p, ok := significance(ref.Timings, acc.Timings); ok {
		cmp.PValue = &p
	}

	c.runner.observer.ObserveComparison(cmp)
	return cmp, nil
}

// CompareOptimization benchmarks a naive algorithm against its alternative form.
// The two may use different iteration counts since naive forms can be exponential.
func (c *Comparator) CompareOptimization(task string, baseline, optimized Func, arg, baselineIterations, optimizedIterations int) (*OptimizationRecord, error) {
	base, err := c.runner.Run(task+" (baseline)", baseline, arg, baselineIterations, c.warmup)
	if err != nil {
		return nil, err
	}
	opt, err := c.runner.Run(task+" (optimized)", optimized, arg, optimizedIterations, c.warmup)
	if err != nil {
		return nil, err
	}

	rec := &OptimizationRecord{
		Task:         task,
		Arg:          arg,
		Baseline:     base,
		Optimized:    opt,
		ResultsMatch: valuesEqual(base.Result, opt.Result),
	}
	if !rec.ResultsMatch {
		slog.Warn("Optimized algorithm disagrees with baseline", "task", task, "error", apperrors.ErrResultMismatch)
	}
	if s, ok := speedup(base.Mean, opt.Mean); ok {
		rec.Speedup = &s
	}
	return rec, nil
}

// Summarize aggregates the defined speedups. Records without an accelerated
// variant are skipped. It returns nil when no record has a speedup.
func Summarize(records []Comparison) *SpeedupSummary {
	var speedups []float64
	for _, r := range records {
		if r.Speedup != nil {
			speedups = append(speedups, *r.Speedup)
		}
	}
	if len(speedups) == 0 {
		return nil
	}

	sum := &SpeedupSummary{
		Count: len(speedups),
		Mean:  stat.Mean(speedups, nil),
		Min:   floats.Min(speedups),
		Max:   floats.Max(speedups),
	}
	sorted := append([]float64(nil), speedups...)
	sort.Float64s(sorted)
	sum.Median = median(sorted)
	if len(speedups) > 1 {
		sum.Stdev = stat.StdDev(speedups, nil)
	}
	return sum
}

// Delta is the change of one task between two saved reports.
type Delta struct {
	Task            string
	ReferenceDiff   float64  // percentage change of the reference mean
	AcceleratedDiff *float64 // nil unless both reports ran the accelerated variant
	Prev            Comparison
	Curr            Comparison
	Regression      bool
}

// Diff compares two reports task by task. Only tasks present in both are returned.
// A positive diff above threshold (percent) on either variant is a regression.
func Diff(prev, curr Report, threshold float64) []Delta {
	prevMap := make(map[string]Comparison)
	for _, c := range prev.Results {
		prevMap[c.Task] = c
	}

	var deltas []Delta
	for _, c := range curr.Results {
		p, ok := prevMap[c.Task]
		if !ok || p.Reference == nil || c.Reference == nil {
			continue
		}

		d := Delta{Task: c.Task, Prev: p, Curr: c}
		if p.Reference.Mean > 0 {
			d.ReferenceDiff = (c.Reference.Mean - p.Reference.Mean) / p.Reference.Mean * 100
		}
		if p.Accelerated != nil && c.Accelerated != nil && p.Accelerated.Mean > 0 {
			diff := (c.Accelerated.Mean - p.Accelerated.Mean) / p.Accelerated.Mean * 100
			d.AcceleratedDiff = &diff
		}
		d.Regression = d.ReferenceDiff > threshold || (d.AcceleratedDiff != nil && *d.AcceleratedDiff > threshold)

		deltas = append(deltas, d)
	}
	return deltas
}

func (d Delta) String() string {
	if d.AcceleratedDiff == nil {
		return fmt.Sprintf("%s: %+.2f%% reference", d.Task, d.ReferenceDiff)
	}
	return fmt.Sprintf("%s: %+.2f%% reference, %+.2f%% accelerated", d.Task, d.ReferenceDiff, *d.AcceleratedDiff)
}
