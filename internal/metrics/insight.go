package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	insightResultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verifresh",
		Subsystem: "insight",
		Name:      "results_total",
		Help:      "Count of insight generations by outcome variant.",
	}, []string{"variant"})
	insightGenerateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "verifresh",
		Subsystem: "insight",
		Name:      "generate_duration_seconds",
		Help:      "Duration of insight generations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"variant"})
)

// Insight tracks insight pipeline outcomes.
type Insight struct{}

// NewInsight constructs a metrics collector for the insight pipeline.
func NewInsight() *Insight {
	return &Insight{}
}

// ObserveGenerate records one generation outcome and its duration.
func (m Insight) ObserveGenerate(degraded bool, started time.Time) {
	variant := "success"
	if degraded {
		variant = "degraded"
	}

	insightResultsTotal.WithLabelValues(variant).Inc()
	insightGenerateDuration.WithLabelValues(variant).Observe(time.Since(started).Seconds())
}
