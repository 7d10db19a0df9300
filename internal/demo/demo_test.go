package demo

import (
	"bytes"
	"testing"

	"accelbench/internal/algorithms"
	"accelbench/internal/benchmark"
	apperrors "accelbench/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		selector string
		want     []string
	}{
		{"sum", []string{"sum"}},
		{"SQUARES", []string{"sum"}},
		{"fib", []string{"fibonacci"}},
		{"Fibonacci", []string{"fibonacci"}},
		{"primes", []string{"prime"}},
		{"mult", []string{"matrix"}},
		{"all", []string{"sum", "fibonacci", "prime", "matrix"}},
		{" demo ", []string{"sum", "fibonacci", "prime", "matrix"}},
	}
	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			demos, err := Lookup(tt.selector)
			require.NoError(t, err)
			var keys []string
			for _, d := range demos {
				keys = append(keys, d.Key)
			}
			assert.Equal(t, tt.want, keys)
		})
	}

	_, err := Lookup("cube")
	assert.ErrorIs(t, err, ErrUnknownDemo)
	assert.Contains(t, err.Error(), "available: sum, fibonacci, prime, matrix, all")
}

func TestSelectors(t *testing.T) {
	assert.Equal(t, []string{"all", "demo", "fib", "fibonacci", "matrix", "mult", "prime", "primes", "squares", "sum"}, Selectors())
}

func TestChoices(t *testing.T) {
	choices := Choices()
	require.Len(t, choices, 6)
	assert.Equal(t, "1", choices[0].Key)
	assert.Equal(t, "Sum of Squares", choices[0].Label)
	assert.Len(t, choices[4].Demos, 4)
	assert.Equal(t, "0", choices[5].Key)
	assert.Empty(t, choices[5].Demos)

	c, ok := ParseChoice(" 3 ")
	require.True(t, ok)
	assert.Equal(t, benchmark.KindPrime, c.Demos[0].Kind)

	for _, bad := range []string{"", "6", "-1", "x", "12"} {
		_, ok := ParseChoice(bad)
		assert.False(t, ok, bad)
	}
}

// optimizingSuite adds the alternative algorithms to the reference suite.
type optimizingSuite struct{ algorithms.Suite }

func (optimizingSuite) SumOfSquaresOptimized(n int) (int64, error) {
	return algorithms.SumOfSquaresOptimized(n)
}
func (optimizingSuite) FibonacciMemoized(n int) (int64, error) { return algorithms.FibonacciMemoized(n) }
func (optimizingSuite) PrimeCountSieve(n int) (int64, error)   { return algorithms.PrimeCountSieve(n) }

type brokenSuite struct{ algorithms.Suite }

func (brokenSuite) SumOfSquares(int) (int64, error) { return 1, nil }

func smallDemo(kind benchmark.Kind, arg int) Demo {
	return Demo{Key: string(kind), Title: kind.Title(), Kind: kind, Arg: arg, Intro: "Input %s"}
}

func TestHarness_ReferenceOnly(t *testing.T) {
	var out bytes.Buffer
	h := NewHarness(&out, nil, nil, nil)

	require.NoError(t, h.Run(smallDemo(benchmark.KindSum, 1000)))
	s := out.String()
	assert.Contains(t, s, "SUM OF SQUARES DEMO")
	assert.Contains(t, s, "Input 1,000")
	assert.Contains(t, s, "Reference:   333,833,500 (took")
	assert.NotContains(t, s, "Accelerated")
	assert.NotContains(t, s, "Speedup")
}

func TestHarness_WithAccelerated(t *testing.T) {
	var out bytes.Buffer
	h := NewHarness(&out, algorithms.Reference(), optimizingSuite{algorithms.Reference()}, nil)

	require.NoError(t, h.RunAll([]Demo{
		smallDemo(benchmark.KindPrime, 100),
		smallDemo(benchmark.KindFibonacci, 20),
		smallDemo(benchmark.KindMatrix, 2),
	}))
	s := out.String()

	assert.Contains(t, s, "Accelerated: 25 primes")
	assert.Contains(t, s, "Sieve:       25 primes")
	assert.Contains(t, s, "Memoized:    6,765")
	assert.Contains(t, s, "first element = 1")
	assert.Contains(t, s, "with accelerated")
	assert.NotContains(t, s, "WARNING")
}

func TestHarness_Mismatch(t *testing.T) {
	var out bytes.Buffer
	h := NewHarness(&out, nil, brokenSuite{algorithms.Reference()}, nil)

	require.NoError(t, h.Run(smallDemo(benchmark.KindSum, 10)))
	assert.Contains(t, out.String(), "WARNING: results differ between implementations")
}

func TestHarness_InvalidArgument(t *testing.T) {
	var out bytes.Buffer
	h := NewHarness(&out, nil, nil, nil)

	err := h.RunAll([]Demo{smallDemo(benchmark.KindPrime, -1), smallDemo(benchmark.KindSum, 5)})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	assert.NotContains(t, out.String(), "SUM OF SQUARES", "RunAll stops at the first error")
}

func TestFormatValue(t *testing.T) {
	m, err := algorithms.MatrixFromRows([][]int64{{4}})
	require.NoError(t, err)

	assert.Equal(t, "1,234,567", formatValue(benchmark.KindSum, algorithms.Scalar(1234567)))
	assert.Equal(t, "1,229 primes", formatValue(benchmark.KindPrime, algorithms.Scalar(1229)))
	assert.Equal(t, "first element = 4", formatValue(benchmark.KindMatrix, m))
}
