package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"accelbench/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	assert.NotNil(t, m.BenchmarkSeconds)
	assert.NotNil(t, m.BenchmarksTotal)
	assert.NotNil(t, m.Mismatches)
	assert.NotNil(t, m.Speedup)

	// Registering twice on the same registry must fail.
	assert.Panics(t, func() { New(reg) })
}

func TestObserveCall(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCall("Prime Count (n=10K) (reference)", 0.01)
	m.ObserveCall("Prime Count (n=10K) (reference)", 0.02)
	m.ObserveCall("Prime Count (n=10K) (accelerated)", 0.001)
	m.ObserveCall("plain", 0.5)

	assert.Equal(t, 3, testutil.CollectAndCount(m.BenchmarkSeconds))
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name, task, variant string
	}{
		{"Sum of Squares (n=1K) (reference)", "Sum of Squares (n=1K)", "reference"},
		{"fib (accelerated)", "fib", "accelerated"},
		{"plain", "plain", "unknown"},
		{"(odd)", "(odd)", "unknown"},
	}
	for _, tt := range tests {
		task, variant := splitName(tt.name)
		assert.Equal(t, tt.task, task, tt.name)
		assert.Equal(t, tt.variant, variant, tt.name)
	}
}

func TestObserveComparison(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveComparison(&benchmark.Comparison{Task: "ref", Reference: &benchmark.Result{}})
	m.ObserveComparison(&benchmark.Comparison{
		Task:         "sum",
		Reference:    &benchmark.Result{},
		Accelerated:  &benchmark.Result{},
		Speedup:      ptr(12.5),
		ResultsMatch: ptr(true),
	})
	m.ObserveComparison(&benchmark.Comparison{
		Task:         "prime",
		Reference:    &benchmark.Result{},
		Accelerated:  &benchmark.Result{},
		ResultsMatch: ptr(false),
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.BenchmarksTotal.WithLabelValues("reference_only")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BenchmarksTotal.WithLabelValues("compared")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Mismatches.WithLabelValues("prime")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Mismatches), "only the mismatching task is counted")
	assert.Equal(t, 12.5, testutil.ToFloat64(m.Speedup.WithLabelValues("sum")))
}

func TestHandler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveComparison(&benchmark.Comparison{
		Task:         "sum",
		Accelerated:  &benchmark.Result{},
		Speedup:      ptr(3.0),
		ResultsMatch: ptr(true),
	})

	ts := httptest.NewServer(m.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `accelbench_speedup_ratio{task="sum"} 3`)
	assert.Contains(t, string(body), "accelbench_benchmarks_total")
}
