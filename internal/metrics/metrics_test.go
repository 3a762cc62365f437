package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestLedgerRPCRecords(t *testing.T) {
	m := NewLedgerRPC("")
	start := time.Now().Add(-200 * time.Millisecond)

	if inc := delta(t, ledgerRPCRequestsTotal.WithLabelValues("account_get", "unknown", "success"), func() {
		m.Observe("account_get", nil, start)
	}); inc != 1 {
		t.Fatalf("expected rpc call counter increment, got %v", inc)
	}

	if inc := delta(t, ledgerRPCRequestsTotal.WithLabelValues("transaction_submit", "unknown", "error"), func() {
		m.Observe("transaction_submit", errors.New("oops"), start)
	}); inc != 1 {
		t.Fatalf("expected rpc error counter increment, got %v", inc)
	}
}

func TestModelClientRecords(t *testing.T) {
	m := NewModelClient("gemini-2.5-flash")
	start := time.Now().Add(-time.Second)

	if inc := delta(t, modelRequestsTotal.WithLabelValues("generate_content", "gemini-2.5-flash", "success"), func() {
		m.Observe("generate_content", nil, start)
	}); inc != 1 {
		t.Fatalf("expected model call counter increment, got %v", inc)
	}
}

func TestInsightRecords(t *testing.T) {
	m := NewInsight()
	start := time.Now().Add(-100 * time.Millisecond)

	if inc := delta(t, insightResultsTotal.WithLabelValues("degraded"), func() {
		m.ObserveGenerate(true, start)
	}); inc != 1 {
		t.Fatalf("expected degraded counter increment, got %v", inc)
	}

	if inc := delta(t, insightResultsTotal.WithLabelValues("success"), func() {
		m.ObserveGenerate(false, start)
	}); inc != 1 {
		t.Fatalf("expected success counter increment, got %v", inc)
	}
}
