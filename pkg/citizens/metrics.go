package citizens

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation results.
const (
	resultOK       = "ok"       // mutation applied or query matched
	resultRejected = "rejected" // Add of nil or duplicate ID
	resultMiss     = "miss"     // Remove or Find of an unknown ID
	resultEmpty    = "empty"    // query matched nobody
)

var (
	// operationsTotal counts directory operations.
	// Labels: operation (add, remove, find, find_by_age, ...), result (ok, rejected, miss, empty)
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "citizens",
		Subsystem: "directory",
		Name:      "operations_total",
		Help:      "Total directory operations by result",
	}, []string{"operation", "result"})

	// operationDuration measures operation latency, including time spent
	// waiting for the directory lock.
	// Labels: operation
	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "citizens",
		Subsystem: "directory",
		Name:      "operation_duration_seconds",
		Help:      "Directory operation latency in seconds, including lock wait",
		Buckets:   []float64{1e-7, 1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1},
	}, []string{"operation"})
)

func observe(operation, result string, start time.Time) {
	operationsTotal.WithLabelValues(operation, result).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func queryResult(n int) string {
	if n == 0 {
		return resultEmpty
	}
	return resultOK
}
