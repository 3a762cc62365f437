// Package rpc implements the JSON-RPC client for the ledger network node.
package rpc

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

// Ledger-side error codes returned in JSON-RPC error objects.
const (
	CodeAccountNotFound    = 2001
	CodeAccountExists      = 2002
	CodeUnauthorized       = 2003
	CodeInvalidTransaction = 2004
)

// Error is a JSON-RPC error returned by the ledger node.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("ledger rpc error %d: %s", e.Code, e.Message)
}

// Client talks JSON-RPC 2.0 to a single ledger node endpoint.
// It is safe for concurrent use and performs no retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
	nextID     atomic.Uint64
}

// NewClient constructs a client for the given node endpoint.
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetAccount fetches the raw account payload stored at address.
// A missing account is reported as (nil, nil).
func (c *Client) GetAccount(ctx context.Context, address string) ([]byte, error) {
	var res *struct {
		Data string `json:"data"`
	}
	err := c.call(ctx, "account_get", map[string]string{"address": address}, &res)
	if err != nil {
		var rpcErr *Error
		if errors.As(err, &rpcErr) && rpcErr.Code == CodeAccountNotFound {
			return nil, nil
		}
		return nil, err
	}
	if res == nil || res.Data == "" {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(res.Data)
	if err != nil {
		return nil, fmt.Errorf("decode account data: %w", err)
	}
	return data, nil
}

// SubmitTransaction submits a serialized signed transaction envelope and
// returns the inclusion signature assigned by the network.
func (c *Client) SubmitTransaction(ctx context.Context, signedTx []byte) (string, error) {
	var res struct {
		Signature string `json:"signature"`
	}
	params := map[string]string{"transaction": base64.StdEncoding.EncodeToString(signedTx)}
	if err := c.call(ctx, "transaction_submit", params, &res); err != nil {
		return "", err
	}
	if res.Signature == "" {
		return "", fmt.Errorf("node returned empty transaction signature")
	}
	return res.Signature, nil
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *Error          `json:"error"`
}

func (c *Client) call(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", method, resp.StatusCode)
	}

	var rpcResp response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if out != nil && len(rpcResp.Result) > 0 {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("unmarshal %s result: %w", method, err)
		}
	}
	return nil
}
