package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditorVerifyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scholarpay",
		Subsystem: "ledger_auditor",
		Name:      "verify_runs_total",
		Help:      "Count of chain verification runs.",
	}, []string{"status"})
	auditorVerifyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scholarpay",
		Subsystem: "ledger_auditor",
		Name:      "verify_duration_seconds",
		Help:      "Duration of chain verification runs.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"status"})
	auditorChainValid = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "scholarpay",
		Subsystem: "ledger_auditor",
		Name:      "chain_valid",
		Help:      "1 when the last verification found an intact chain, 0 otherwise.",
	})
	auditorChainBlocks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "scholarpay",
		Subsystem: "ledger_auditor",
		Name:      "chain_blocks",
		Help:      "Number of blocks seen by the last verification.",
	})
)

// Auditor tracks metrics for the periodic chain verifier.
type Auditor struct{}

// NewAuditor creates an Auditor metrics collector.
func NewAuditor() *Auditor {
	return &Auditor{}
}

// ObserveVerify records one verification run.
func (m Auditor) ObserveVerify(err error, started time.Time) {
	status := statusLabel(err)
	auditorVerifyTotal.WithLabelValues(status).Inc()
	auditorVerifyDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

// SetChainValid publishes the outcome of the last verification.
func (m Auditor) SetChainValid(valid bool) {
	if valid {
		auditorChainValid.Set(1)
		return
	}
	auditorChainValid.Set(0)
}

// SetChainBlocks publishes the chain length seen by the last verification.
func (m Auditor) SetChainBlocks(count uint64) {
	auditorChainBlocks.Set(float64(count))
}
