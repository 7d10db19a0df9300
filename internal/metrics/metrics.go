package metrics

import (
	"net/http"
	"strings"

	"accelbench/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors fed by the benchmark runner.
// It implements benchmark.Observer.
type Metrics struct {
	BenchmarkSeconds *prometheus.HistogramVec
	BenchmarksTotal  *prometheus.CounterVec
	Mismatches       *prometheus.CounterVec
	Speedup          *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

var _ benchmark.Observer = (*Metrics)(nil)

// New creates the collectors and registers them with reg. A nil reg uses a
// fresh private registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{}

	m.BenchmarkSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "accelbench_benchmark_seconds",
			Help:    "Duration of a single timed benchmark call in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"task", "variant"},
	)

	m.BenchmarksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelbench_benchmarks_total",
			Help: "Total number of completed comparisons",
		},
		[]string{"mode"},
	)

	m.Mismatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accelbench_result_mismatches_total",
			Help: "Comparisons where reference and accelerated results differed",
		},
		[]string{"task"},
	)

	m.Speedup = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "accelbench_speedup_ratio",
			Help: "Latest reference/accelerated mean time ratio",
		},
		[]string{"task"},
	)

	reg.MustRegister(
		m.BenchmarkSeconds,
		m.BenchmarksTotal,
		m.Mismatches,
		m.Speedup,
	)

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	} else {
		m.gatherer = prometheus.DefaultGatherer
	}
	return m
}

// ObserveCall records one timed call. Runner names look like "task (variant)".
func (m *Metrics) ObserveCall(name string, seconds float64) {
	task, variant := splitName(name)
	m.BenchmarkSeconds.WithLabelValues(task, variant).Observe(seconds)
}

// ObserveComparison records the outcome of a finished comparison.
func (m *Metrics) ObserveComparison(c *benchmark.Comparison) {
	if !c.HasAccelerated() {
		m.BenchmarksTotal.WithLabelValues("reference_only").Inc()
		return
	}
	m.BenchmarksTotal.WithLabelValues("compared").Inc()

	if c.ResultsMatch != nil && !*c.ResultsMatch {
		m.Mismatches.WithLabelValues(c.Task).Inc()
	}
	if c.Speedup != nil {
		m.Speedup.WithLabelValues(c.Task).Set(*c.Speedup)
	}
}

// Handler serves the registry the collectors were registered with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func splitName(name string) (task, variant string) {
	if strings.HasSuffix(name, ")") {
		if i := strings.LastIndex(name, " ("); i > 0 {
			return name[:i], name[i+2 : len(name)-1]
		}
	}
	return name, "unknown"
}
