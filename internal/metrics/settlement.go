package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	settlementOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scholarpay",
		Subsystem: "settlement",
		Name:      "operations_total",
		Help:      "Count of settlement coordinator operations.",
	}, []string{"operation", "status"})
	settlementOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scholarpay",
		Subsystem: "settlement",
		Name:      "operation_duration_seconds",
		Help:      "Duration of settlement coordinator operations.",
		Buckets:   []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"operation", "status"})
)

// Settlement tracks metrics for settlement coordinator operations.
type Settlement struct{}

// NewSettlement creates a Settlement metrics collector.
func NewSettlement() *Settlement {
	return &Settlement{}
}

// Observe records duration and status of a coordinator operation.
func (m Settlement) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	settlementOperationsTotal.WithLabelValues(operation, status).Inc()
	settlementOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
