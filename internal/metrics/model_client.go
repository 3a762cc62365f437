package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	modelRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verifresh",
		Subsystem: "model_client",
		Name:      "operations_total",
		Help:      "Count of generative model calls.",
	}, []string{"operation", "model", "status"})
	modelRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "verifresh",
		Subsystem: "model_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of generative model calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "model", "status"})
)

// ModelClient tracks metrics for calls to the generative model endpoint.
type ModelClient struct {
	model string
}

// NewModelClient constructs a metrics collector for model calls.
func NewModelClient(model string) *ModelClient {
	if model == "" {
		model = "unknown"
	}
	return &ModelClient{model: model}
}

// Observe records a single model call outcome and duration.
func (m ModelClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	modelRequestsTotal.WithLabelValues(operation, m.model, status).Inc()
	modelRequestDuration.WithLabelValues(operation, m.model, status).Observe(time.Since(started).Seconds())
}
