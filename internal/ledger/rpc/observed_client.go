package rpc

import (
	"context"
	"time"
)

type (
	// RPCMetrics records metrics for ledger node RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient wraps Client with metrics instrumentation.
type ObservedClient struct {
	client     *Client
	rpcMetrics RPCMetrics
}

// NewObservedClient constructs an instrumented node client.
func NewObservedClient(client *Client, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetAccount fetches raw account data by address.
func (o *ObservedClient) GetAccount(ctx context.Context, address string) (data []byte, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("account_get", err, started)
	}()
	return o.client.GetAccount(ctx, address)
}

// SubmitTransaction submits a signed transaction envelope.
func (o *ObservedClient) SubmitTransaction(ctx context.Context, signedTx []byte) (sig string, err error) {
	started := time.Now()
	defer func() {
		o.rpcMetrics.Observe("transaction_submit", err, started)
	}()
	return o.client.SubmitTransaction(ctx, signedTx)
}
