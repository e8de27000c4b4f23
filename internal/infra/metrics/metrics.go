package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "lifecycle"

var operationsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Total number of lifecycle operations by operation and result.",
	},
	[]string{"operation", "result"},
)

var operationDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Duration of lifecycle operations including all cluster API calls.",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
	},
	[]string{"operation"},
)

var resourceActionsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resource_actions_total",
		Help:      "Total number of per-resource outcomes (patched, deleted, skipped, failed).",
	},
	[]string{"kind", "action"},
)

var recordedReplicasFallbackTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "recorded_replicas_fallback_total",
		Help: "Total number of starts that defaulted to 0 replicas because the " +
			"last-applied configuration was missing, malformed or had no spec.replicas.",
	},
	[]string{"reason"},
)

var scheduledRunsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduled_runs_total",
		Help:      "Total number of scheduled lifecycle runs by action and result.",
	},
	[]string{"action", "result"},
)

var dependencyUp = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "dependency_up",
		Help:      "Whether the last health ping of a dependency succeeded (1) or failed (0).",
	},
	[]string{"name"},
)

var dependencyPingDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dependency_ping_duration_seconds",
		Help:      "Latency of dependency health pings.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"name"},
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// RecordOperation records one finished lifecycle operation.
func RecordOperation(operation string, err error, duration time.Duration) {
	operationsTotal.WithLabelValues(operation, result(err)).Inc()
	operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordResourceAction records the outcome for a single deployment or pod.
func RecordResourceAction(kind, action string) {
	resourceActionsTotal.WithLabelValues(kind, action).Inc()
}

// RecordRecordedReplicasFallback records a start that could not recover a replica count.
func RecordRecordedReplicasFallback(reason string) {
	recordedReplicasFallbackTotal.WithLabelValues(reason).Inc()
}

// RecordScheduledRun records one run of a scheduled job.
func RecordScheduledRun(action string, err error) {
	scheduledRunsTotal.WithLabelValues(action, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}

	return ResultSuccess
}

// RecordPing records the result of one dependency health ping.
func RecordPing(name string, err error, latency time.Duration) {
	up := 1.0
	if err != nil {
		up = 0
	}

	dependencyUp.WithLabelValues(name).Set(up)
	dependencyPingDuration.WithLabelValues(name).Observe(latency.Seconds())
}
