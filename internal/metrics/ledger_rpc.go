// Package metrics defines prometheus collectors for the backend's
// external boundaries.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "verifresh",
		Subsystem: "ledger_rpc",
		Name:      "operations_total",
		Help:      "Count of ledger node RPC operations.",
	}, []string{"operation", "network", "status"})
	ledgerRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "verifresh",
		Subsystem: "ledger_rpc",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// LedgerRPC tracks metrics for RPC calls to the ledger network.
type LedgerRPC struct {
	network string
}

// NewLedgerRPC constructs a metrics collector for ledger RPC calls.
func NewLedgerRPC(network string) *LedgerRPC {
	if network == "" {
		network = "unknown"
	}
	return &LedgerRPC{network: network}
}

// Observe records a single RPC call outcome and duration.
func (m LedgerRPC) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	ledgerRPCRequestsTotal.WithLabelValues(operation, m.network, status).Inc()
	ledgerRPCRequestDuration.WithLabelValues(operation, m.network, status).Observe(time.Since(started).Seconds())
}
