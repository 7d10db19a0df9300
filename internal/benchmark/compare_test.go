package benchmark

import (
	"testing"
	"time"

	"accelbench/internal/algorithms"
	apperrors "accelbench/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCompare_ReferenceOnly(t *testing.T) {
	obs := &recordingObserver{}
	c := NewComparator(NewRunner(WithObserver(obs)), true)

	cmp, err := c.Compare("sum", constant(385), nil, 10, 3)
	require.NoError(t, err)

	require.NotNil(t, cmp.Reference)
	assert.Equal(t, algorithms.Scalar(385), cmp.Reference.Result)
	assert.False(t, cmp.HasAccelerated())
	assert.Nil(t, cmp.Accelerated)
	assert.Nil(t, cmp.Speedup)
	assert.Nil(t, cmp.ImprovementPercent)
	assert.Nil(t, cmp.ResultsMatch)
	assert.Nil(t, cmp.PValue)
	assert.NoError(t, cmp.Err())
	assert.Len(t, obs.comparisons, 1)
}

func TestCompare_Speedup(t *testing.T) {
	// Reference iterations are timed first, then accelerated.
	clock := &fakeClock{durations: []time.Duration{
		4 * time.Millisecond, 4 * time.Millisecond,
		1 * time.Millisecond, 1 * time.Millisecond,
	}}
	c := NewComparator(NewRunner(WithClock(clock)), false)

	cmp, err := c.Compare("sum", constant(5), constant(5), 2, 2)
	require.NoError(t, err)

	require.NotNil(t, cmp.Speedup)
	assert.InDelta(t, 4.0, *cmp.Speedup, 1e-9)
	require.NotNil(t, cmp.ImprovementPercent)
	assert.InDelta(t, 300.0, *cmp.ImprovementPercent, 1e-9)
	require.NotNil(t, cmp.ResultsMatch)
	assert.True(t, *cmp.ResultsMatch)
	assert.Equal(t, "sum (reference)", cmp.Reference.Name)
	assert.Equal(t, "sum (accelerated)", cmp.Accelerated.Name)
	assert.Equal(t, 2, cmp.Accelerated.Iterations)
}

func TestCompare_ZeroAcceleratedTimeLeavesSpeedupUndefined(t *testing.T) {
	clock := &fakeClock{durations: []time.Duration{time.Millisecond, 0}}
	c := NewComparator(NewRunner(WithClock(clock)), false)

	cmp, err := c.Compare("fast", constant(1), constant(1), 0, 1)
	require.NoError(t, err)
	assert.Nil(t, cmp.Speedup)
	assert.Nil(t, cmp.ImprovementPercent)
	require.NotNil(t, cmp.ResultsMatch)
	assert.True(t, *cmp.ResultsMatch)
}

func TestCompare_MismatchIsRecordedNotReturned(t *testing.T) {
	obs := &recordingObserver{}
	c := NewComparator(NewRunner(WithObserver(obs)), false)

	cmp, err := c.Compare("broken", constant(1), constant(2), 0, 2)
	require.NoError(t, err)

	require.NotNil(t, cmp.ResultsMatch)
	assert.False(t, *cmp.ResultsMatch)
	assert.ErrorIs(t, cmp.Err(), apperrors.ErrResultMismatch)
	require.Len(t, obs.comparisons, 1)
	assert.Same(t, cmp, obs.comparisons[0])
}

func TestCompare_InvalidArgumentPropagates(t *testing.T) {
	ref, err := SuiteFunc(algorithms.Reference(), KindPrime)
	require.NoError(t, err)

	c := NewComparator(nil, true)
	cmp, err := c.Compare("prime", ref, ref, -5, 1)
	assert.Nil(t, cmp)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCompareOptimization(t *testing.T) {
	clock := &fakeClock{durations: []time.Duration{10 * time.Millisecond, time.Millisecond}}
	c := NewComparator(NewRunner(WithClock(clock)), false)

	base, err := SuiteFunc(algorithms.Reference(), KindFibonacci)
	require.NoError(t, err)
	opt := func(arg int) (algorithms.Value, error) {
		v, err := algorithms.FibonacciMemoized(arg)
		return algorithms.Scalar(v), err
	}

	rec, err := c.CompareOptimization("fib", base, opt, 20, 1, 1)
	require.NoError(t, err)

	assert.True(t, rec.ResultsMatch)
	assert.Equal(t, algorithms.Scalar(6765), rec.Optimized.Result)
	require.NotNil(t, rec.Speedup)
	assert.InDelta(t, 10.0, *rec.Speedup, 1e-9)
}

func TestSummarize(t *testing.T) {
	t.Run("no speedups", func(t *testing.T) {
		assert.Nil(t, Summarize(nil))
		assert.Nil(t, Summarize([]Comparison{{Task: "ref only"}}))
	})

	t.Run("skips reference-only records", func(t *testing.T) {
		records := []Comparison{
			{Task: "a", Speedup: ptr(2.0)},
			{Task: "b"},
			{Task: "c", Speedup: ptr(6.0)},
			{Task: "d", Speedup: ptr(4.0)},
		}
		s := Summarize(records)
		require.NotNil(t, s)
		assert.Equal(t, 3, s.Count)
		assert.InDelta(t, 4.0, s.Mean, 1e-9)
		assert.InDelta(t, 4.0, s.Median, 1e-9)
		assert.InDelta(t, 2.0, s.Min, 1e-9)
		assert.InDelta(t, 6.0, s.Max, 1e-9)
		assert.InDelta(t, 2.0, s.Stdev, 1e-9)
	})

	t.Run("single speedup", func(t *testing.T) {
		s := Summarize([]Comparison{{Speedup: ptr(3.0)}})
		require.NotNil(t, s)
		assert.Equal(t, 0.0, s.Stdev)
		assert.Equal(t, 3.0, s.Median)
	})
}

func TestDiff(t *testing.T) {
	prev := Report{Results: []Comparison{
		{Task: "A", Reference: &Result{Mean: 100}, Accelerated: &Result{Mean: 10}},
		{Task: "B", Reference: &Result{Mean: 200}},
	}}
	curr := Report{Results: []Comparison{
		{Task: "A", Reference: &Result{Mean: 105}, Accelerated: &Result{Mean: 15}},
		{Task: "C", Reference: &Result{Mean: 300}},
	}}

	deltas := Diff(prev, curr, 10)
	require.Len(t, deltas, 1)

	d := deltas[0]
	assert.Equal(t, "A", d.Task)
	assert.InDelta(t, 5.0, d.ReferenceDiff, 1e-9)
	require.NotNil(t, d.AcceleratedDiff)
	assert.InDelta(t, 50.0, *d.AcceleratedDiff, 1e-9)
	assert.True(t, d.Regression)
	assert.Equal(t, "A: +5.00% reference, +50.00% accelerated", d.String())

	deltas = Diff(prev, curr, 60)
	require.Len(t, deltas, 1)
	assert.False(t, deltas[0].Regression)
}

func TestDiff_ReferenceOnly(t *testing.T) {
	prev := Report{Results: []Comparison{{Task: "A", Reference: &Result{Mean: 100}}}}
	curr := Report{Results: []Comparison{{Task: "A", Reference: &Result{Mean: 80}}}}

	deltas := Diff(prev, curr, 10)
	require.Len(t, deltas, 1)
	assert.Nil(t, deltas[0].AcceleratedDiff)
	assert.InDelta(t, -20.0, deltas[0].ReferenceDiff, 1e-9)
	assert.False(t, deltas[0].Regression)
	assert.Equal(t, "A: -20.00% reference", deltas[0].String())
}
