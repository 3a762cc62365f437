package ledger

import "context"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the subset of the ledger node RPC surface the client
	// depends on: fetch account data by address and submit a signed
	// transaction envelope.
	NodeClient interface {
		// GetAccount returns the raw account payload at address, or nil
		// when no account exists there.
		GetAccount(ctx context.Context, address string) ([]byte, error)
		// SubmitTransaction submits a serialized signed transaction and
		// returns the network's inclusion signature.
		SubmitTransaction(ctx context.Context, signedTx []byte) (string, error)
	}
)
