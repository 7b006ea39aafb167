package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	razorpayRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "scholarpay",
		Subsystem: "razorpay_client",
		Name:      "requests_total",
		Help:      "Count of Razorpay API requests.",
	}, []string{"operation", "status"})
	razorpayRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "scholarpay",
		Subsystem: "razorpay_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of Razorpay API requests.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15, 30},
	}, []string{"operation", "status"})
)

// RazorpayClient tracks metrics for payment gateway requests.
type RazorpayClient struct{}

// NewRazorpayClient creates a RazorpayClient metrics collector.
func NewRazorpayClient() *RazorpayClient {
	return &RazorpayClient{}
}

// Observe records duration and status of a gateway request.
func (m RazorpayClient) Observe(operation string, err error, started time.Time) {
	status := statusLabel(err)
	razorpayRequestsTotal.WithLabelValues(operation, status).Inc()
	razorpayRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
