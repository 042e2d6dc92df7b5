package bench

import (
	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics tracks in-process counters and a duration histogram for one
// benchmark session. It is never exported over HTTP: no component in
// this module runs a network listener, so every metric is read back
// through Snapshot rather than scraped.
//
// Grounded on the CSV/subscription counters in
// operator-lifecycle-manager's pkg/metrics/metrics.go, generalized
// from a package-level singleton registry to a per-session value so
// separate benchmark sessions don't share state. Within one session
// (e.g. Compare across solver kinds) a single Metrics is shared and
// samples are kept apart by the algorithm label.
type Metrics struct {
	registry   *prometheus.Registry
	runsTotal  *prometheus.CounterVec
	failures   *prometheus.CounterVec
	solveTimes *prometheus.HistogramVec
}

// NewMetrics constructs a fresh, unregistered-with-the-default-registry
// metrics set labeled by solver algorithm name.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sudokucore_bench_runs_total",
			Help: "Total number of solve attempts recorded by the benchmark harness.",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sudokucore_bench_failures_total",
			Help: "Total number of solve attempts that did not produce a solution.",
		}, []string{"algorithm"}),
		solveTimes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sudokucore_bench_solve_duration_ms",
			Help:    "Per-run solve duration in milliseconds.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 20),
		}, []string{"algorithm"}),
	}
	m.registry.MustRegister(m.runsTotal, m.failures, m.solveTimes)
	return m
}

// Observe records one completed sample against the named algorithm.
func (m *Metrics) Observe(algorithm string, s Sample) {
	m.runsTotal.WithLabelValues(algorithm).Inc()
	m.solveTimes.WithLabelValues(algorithm).Observe(s.TimeMS)
	if !s.Solved {
		m.failures.WithLabelValues(algorithm).Inc()
	}
}

// Snapshot gathers the current metric families from the registry. It
// is the only way this module reads its own metrics back; nothing here
// starts an HTTP exporter.
func (m *Metrics) Snapshot() ([]*dto.MetricFamily, error) {
	return m.registry.Gather()
}
