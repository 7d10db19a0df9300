package benchmark

import (
	"math"
	"sort"

	"golang.org/x/perf/benchmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultConfidence is the confidence level of the interval reported around the median.
const DefaultConfidence = 0.95

type summary struct {
	mean, median, min, max, stdev float64
	ciLow, ciHigh                 float64
}

// describe computes descriptive statistics over a non-empty sample.
// The sample standard deviation of a single value is defined as 0.
func describe(values []float64, confidence float64) summary {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s := summary{
		mean:   stat.Mean(values, nil),
		median: median(sorted),
		min:    floats.Min(values),
		max:    floats.Max(values),
	}
	if len(values) > 1 {
		s.stdev = stat.StdDev(values, nil)
	}

	// benchmath sorts its input in place, hand it the copy.
	ci := benchmath.AssumeNothing.Summary(benchmath.NewSample(sorted, &benchmath.DefaultThresholds), confidence)
	s.ciLow, s.ciHigh = ci.Lo, ci.Hi
	if !isFinite(s.ciLow) || s.ciLow > s.median {
		s.ciLow = s.min
	}
	if !isFinite(s.ciHigh) || s.ciHigh < s.median {
		s.ciHigh = s.max
	}
	return s
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// significance returns the Mann-Whitney U p-value for two timing samples.
func significance(a, b []float64) (float64, bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}
	sa := benchmath.NewSample(append([]float64(nil), a...), &benchmath.DefaultThresholds)
	sb := benchmath.NewSample(append([]float64(nil), b...), &benchmath.DefaultThresholds)
	cmp := benchmath.AssumeNothing.Compare(sa, sb)
	if !isFinite(cmp.P) {
		return 0, false
	}
	return cmp.P, true
}

// speedup returns reference/accelerated, undefined when accelerated is not positive.
func speedup(reference, accelerated float64) (float64, bool) {
	if accelerated <= 0 || !isFinite(reference) || !isFinite(accelerated) {
		return 0, false
	}
	return reference / accelerated, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
