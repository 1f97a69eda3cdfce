// Package monitoring records what each task run observed and changed.
package monitoring

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PromRateLimitMismatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "morpho_oft_rate_limit_mismatches_total",
			Help: "Outbound rate limits found to differ from the desired configuration",
		},
		[]string{"network", "destination"},
	)
	PromRateLimitUpdates = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "morpho_oft_rate_limit_updates_total",
			Help: "setRateLimits transactions confirmed",
		},
		[]string{"network"},
	)
	PromTaskFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "morpho_oft_task_failures_total",
			Help: "Task runs that ended in an error",
		},
		[]string{"task", "network"},
	)
	PromTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "morpho_oft_task_duration_seconds",
			Help: "Duration of a task run on one network in seconds",
			Buckets: []float64{
				0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300,
			},
		},
		[]string{"task", "network"},
	)
)

// MetricLabeler records metrics for a single network.
type MetricLabeler struct {
	network string
}

// NewMetricLabeler creates a labeler for network.
func NewMetricLabeler(network string) *MetricLabeler {
	return &MetricLabeler{
		network: network,
	}
}

// NewNoopMetricLabeler creates a labeler that doesn't record metrics.
func NewNoopMetricLabeler() *MetricLabeler {
	return &MetricLabeler{
		network: "", // empty network means no-op
	}
}

func (m *MetricLabeler) enabled() bool {
	return m != nil && m.network != ""
}

// RecordMismatch counts one mismatching destination.
func (m *MetricLabeler) RecordMismatch(destination string) {
	if !m.enabled() {
		return
	}
	PromRateLimitMismatches.WithLabelValues(m.network, destination).Inc()
}

// RecordUpdate counts one confirmed setRateLimits transaction.
func (m *MetricLabeler) RecordUpdate() {
	if !m.enabled() {
		return
	}
	PromRateLimitUpdates.WithLabelValues(m.network).Inc()
}

// RecordTask records the duration and outcome of a task run.
func (m *MetricLabeler) RecordTask(task string, duration time.Duration, err error) {
	if !m.enabled() {
		return
	}
	PromTaskDuration.WithLabelValues(task, m.network).Observe(duration.Seconds())
	if err != nil {
		PromTaskFailures.WithLabelValues(task, m.network).Inc()
	}
}

// WriteTextfile dumps the default registry in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
