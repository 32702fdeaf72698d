package bench

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tsplab/tsp"
)

// Run statuses recorded in tsplab_solver_runs_total.
const (
	statusOK      = "ok"
	statusTimeout = "timeout"
)

// Metrics holds the solver collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	ratio    *prometheus.GaugeVec
}

// NewMetrics creates and registers the runner collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tsplab_solver_duration_seconds",
				Help:    "Wall-clock duration of completed solver runs",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
			},
			[]string{"algorithm"},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tsplab_solver_runs_total",
				Help: "Solver runs by outcome",
			},
			[]string{"algorithm", "status"},
		),
		ratio: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "tsplab_approximation_ratio",
				Help: "Route cost divided by the known optimum",
			},
			[]string{"algorithm", "file"},
		),
	}
	m.Registry.MustRegister(m.duration, m.runs, m.ratio)

	return m
}

// Observe records one solver outcome.
func (m *Metrics) Observe(algo tsp.Algorithm, res tsp.Result) {
	if !res.Available {
		m.runs.WithLabelValues(algo.String(), statusTimeout).Inc()
		return
	}
	m.runs.WithLabelValues(algo.String(), statusOK).Inc()
	m.duration.WithLabelValues(algo.String()).Observe(res.Elapsed.Seconds())
}

// ObserveRatio records cost/optimum for one instance.
func (m *Metrics) ObserveRatio(algo tsp.Algorithm, file string, ratio float64) {
	m.ratio.WithLabelValues(algo.String(), file).Set(ratio)
}

// Runs returns the run counter for algorithm and status ("ok" or "timeout").
func (m *Metrics) Runs(algorithm, status string) prometheus.Counter {
	return m.runs.WithLabelValues(algorithm, status)
}

// Ratio returns the approximation-ratio gauge of algorithm on file.
func (m *Metrics) Ratio(algorithm, file string) prometheus.Gauge {
	return m.ratio.WithLabelValues(algorithm, file)
}

// WriteTextfile dumps the registry in the node-exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, m.Registry), "failed to write metrics to %s", path)
}
