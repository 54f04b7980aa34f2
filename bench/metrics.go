package bench

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "numkit"

// Recorder collects Prometheus metrics for measured routines on a private
// registry. It is safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{registry: prometheus.NewRegistry()}

	r.duration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "routine_duration_seconds",
			Help:      "Elapsed time of numkit routines in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		},
		[]string{"routine"},
	)

	r.runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "routine_runs_total",
			Help:      "Total number of measured routine runs",
		},
		[]string{"routine"},
	)

	r.failures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "routine_failures_total",
			Help:      "Total number of routine runs that returned an error",
		},
		[]string{"routine"},
	)

	r.registry.MustRegister(r.duration, r.runs, r.failures)

	return r
}

// Observe records one measurement. A non-nil err counts as a failure; its
// elapsed time is still observed.
func (r *Recorder) Observe(res Result, err error) {
	if r == nil {
		return
	}
	r.runs.WithLabelValues(res.Name).Inc()
	r.duration.WithLabelValues(res.Name).Observe(res.ElapsedMs / 1000)
	if err != nil {
		r.failures.WithLabelValues(res.Name).Inc()
	}
}

// Gatherer exposes the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the registry to path in the Prometheus text
// exposition format, suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
