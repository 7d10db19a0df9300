package telemetry

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrMetricsRunning is returned when a metrics server was already started in this process.
var ErrMetricsRunning = errors.New("metrics server already running")

var (
	metricsMu      sync.Mutex
	metricsRunning bool
)

// StartMetricsServer serves handler on addr at /metrics, or the default
// Prometheus registry when handler is nil. It blocks until the server stops.
func StartMetricsServer(addr string, handler http.Handler) error {
	if handler == nil {
		handler = promhttp.Handler()
	}
	return serveMetrics(addr, handler)
}

func serveMetrics(addr string, handler http.Handler) error {
	metricsMu.Lock()
	if metricsRunning {
		metricsMu.Unlock()
		return ErrMetricsRunning
	}
	metricsRunning = true
	metricsMu.Unlock()

	defer func() {
		metricsMu.Lock()
		metricsRunning = false
		metricsMu.Unlock()
	}()

	srv := &http.Server{
		Addr:              addr,
		Handler:           newMetricsMux(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("Starting metrics server", "addr", addr)
	return srv.ListenAndServe()
}

func newMetricsMux(handler http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	return mux
}
