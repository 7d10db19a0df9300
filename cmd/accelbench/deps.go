package main

import (
	"io"
	"log/slog"
	"sync"

	"accelbench/internal/algorithms"
	"accelbench/internal/benchmark"
	"accelbench/internal/config"
	"accelbench/internal/demo"
	"accelbench/internal/metrics"
	"accelbench/internal/sysinfo"
	"accelbench/internal/telemetry"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/viper"
)

// Seams replaced in tests.
var (
	loadAccelerated = algorithms.LoadAccelerated
	collectSysInfo  = sysinfo.Collect
	newStoreFunc    = func(path string) (benchmark.Store, error) { return benchmark.NewFileStore(path) }
)

var (
	observer    benchmark.Observer
	metricsOnce sync.Once
)

// startMetrics registers the benchmark collectors and serves them in the background.
func startMetrics(addr string) {
	metricsOnce.Do(func() {
		m := metrics.New(prometheus.DefaultRegisterer)
		observer = m
		go func() {
			if err := telemetry.StartMetricsServer(addr, m.Handler()); err != nil {
				slog.Warn("Metrics server stopped", "addr", addr, "error", err)
			}
		}()
	})
}

// resolveSuites returns the reference suite and, unless disabled or
// unavailable, the accelerated one.
func resolveSuites() (algorithms.Suite, algorithms.Suite) {
	ref := algorithms.Reference()
	if viper.GetBool(config.KeyReferenceOnly) {
		slog.Debug("Reference-only mode requested")
		return ref, nil
	}

	acc, err := loadAccelerated()
	if err != nil {
		slog.Warn("Falling back to reference-only mode", "error", err)
		return ref, nil
	}
	return ref, acc
}

func newRunner() *benchmark.Runner {
	return benchmark.NewRunner(benchmark.WithObserver(observer))
}

// newHarness builds a demo harness and reports whether the accelerated suite is in it.
func newHarness(out io.Writer) (*demo.Harness, bool) {
	ref, acc := resolveSuites()
	return demo.NewHarness(out, ref, acc, newRunner()), acc != nil
}
