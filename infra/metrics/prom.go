package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kilianp07/langlog/core/level"
	coremetrics "github.com/kilianp07/langlog/core/metrics"
	"github.com/kilianp07/langlog/core/transport"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "langlog"

// PromRecorder records emission outcomes in Prometheus metrics.
type PromRecorder struct {
	entries  *prometheus.CounterVec
	filtered *prometheus.CounterVec
	failures *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewPromRecorderWithRegistry registers the metrics on reg under namespace.
// A nil registerer defaults to the global Prometheus registerer and an empty
// namespace to DefaultNamespace. Collectors already registered by another
// recorder are reused.
func NewPromRecorderWithRegistry(namespace string, reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	entries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_total",
		Help:      "Total number of log entries written per transport kind and level",
	}, []string{"kind", "level"})
	filtered := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "filtered_total",
		Help:      "Total number of log entries dropped by a transport threshold",
	}, []string{"kind", "level"})
	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "write_failures_total",
		Help:      "Total number of failed transport writes",
	}, []string{"kind"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "write_duration_seconds",
		Help:      "Time spent rendering and writing one entry",
		Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
	}, []string{"kind"})

	var err error
	if entries, err = register(reg, entries); err != nil {
		return nil, err
	}
	if filtered, err = register(reg, filtered); err != nil {
		return nil, err
	}
	if failures, err = register(reg, failures); err != nil {
		return nil, err
	}
	if duration, err = register(reg, duration); err != nil {
		return nil, err
	}
	return &PromRecorder{entries: entries, filtered: filtered, failures: failures, duration: duration}, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordEntry increments langlog_entries_total.
func (r *PromRecorder) RecordEntry(kind transport.Kind, lvl level.Level) {
	r.entries.WithLabelValues(string(kind), lvl.String()).Inc()
}

// RecordFiltered increments langlog_filtered_total.
func (r *PromRecorder) RecordFiltered(kind transport.Kind, lvl level.Level) {
	r.filtered.WithLabelValues(string(kind), lvl.String()).Inc()
}

// RecordFailure increments langlog_write_failures_total.
func (r *PromRecorder) RecordFailure(kind transport.Kind) {
	r.failures.WithLabelValues(string(kind)).Inc()
}

// RecordWriteDuration observes langlog_write_duration_seconds.
func (r *PromRecorder) RecordWriteDuration(kind transport.Kind, d time.Duration) {
	r.duration.WithLabelValues(string(kind)).Observe(d.Seconds())
}

var _ coremetrics.Recorder = (*PromRecorder)(nil)
