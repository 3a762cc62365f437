package ledger

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/verifresh-labs/verifresh-backend/internal/ledger/rpc"
	"github.com/verifresh-labs/verifresh-backend/internal/model"
	"go.uber.org/zap"
)

// Instruction names understood by the on-ledger product program.
const (
	instructionCreateProduct = "create_product"
	instructionAddLog        = "add_log"
)

type txBody struct {
	Instruction string          `json:"instruction"`
	Address     string          `json:"address"`
	Signer      string          `json:"signer"`
	Payload     json.RawMessage `json:"payload"`
}

type txEnvelope struct {
	Body      txBody `json:"body"`
	Signature string `json:"signature"`
}

type createProductPayload struct {
	ProductID uint64 `json:"productId"`
	Name      string `json:"name"`
	FarmName  string `json:"farmName"`
}

type addLogPayload struct {
	Status   string `json:"status"`
	Location string `json:"location"`
}

// Client performs authenticated reads and writes of product records.
// It is stateless per call apart from the wallet used to sign, performs
// no retries, and is safe for concurrent use.
type Client struct {
	node   NodeClient
	wallet Wallet
	logger *zap.Logger
}

// NewClient constructs a ledger client around a node connection and a
// signing identity.
func NewClient(node NodeClient, wallet Wallet, logger *zap.Logger) (*Client, error) {
	if node == nil {
		return nil, errors.New("node client is required")
	}
	if wallet == nil {
		return nil, errors.New("wallet is required")
	}
	return &Client{
		node:   node,
		wallet: wallet,
		logger: logger.With(zap.String("signer", wallet.PublicKey())),
	}, nil
}

// CreateProduct establishes the immutable core fields of a new record and
// an empty history. The ledger enforces that the id was never used; a
// duplicate create comes back as ErrWriteRejected.
func (c *Client) CreateProduct(ctx context.Context, productID uint64, name, farmName string) (string, error) {
	address := DeriveProductAddress(productID)
	c.logger.Info("creating product",
		zap.Uint64("product_id", productID),
		zap.String("address", address),
	)

	sig, err := c.signAndSubmit(ctx, instructionCreateProduct, address, createProductPayload{
		ProductID: productID,
		Name:      name,
		FarmName:  farmName,
	})
	if err != nil {
		return "", fmt.Errorf("create product %d: %w", productID, err)
	}
	return sig, nil
}

// AddLog appends a history entry to an existing record. The entry's
// timestamp is assigned by the ledger at inclusion time. The signing
// identity must match the authority recorded at creation.
func (c *Client) AddLog(ctx context.Context, productID uint64, status, location string) (string, error) {
	address := DeriveProductAddress(productID)
	c.logger.Info("appending product log",
		zap.Uint64("product_id", productID),
		zap.String("address", address),
	)

	sig, err := c.signAndSubmit(ctx, instructionAddLog, address, addLogPayload{
		Status:   status,
		Location: location,
	})
	if err != nil {
		return "", fmt.Errorf("add log to product %d: %w", productID, err)
	}
	return sig, nil
}

// FetchProduct reads the record at the derived address. A never-created
// id is an expected outcome and returns (nil, nil); any other read
// failure is returned as a distinct error.
func (c *Client) FetchProduct(ctx context.Context, productID uint64) (*model.Product, error) {
	address := DeriveProductAddress(productID)

	data, err := c.node.GetAccount(ctx, address)
	if err != nil {
		var rpcErr *rpc.Error
		if errors.As(err, &rpcErr) {
			if rpcErr.Code == rpc.CodeAccountNotFound {
				return nil, nil
			}
			return nil, fmt.Errorf("fetch product %d: %w", productID, err)
		}
		return nil, fmt.Errorf("fetch product %d: %w: %w", productID, ErrNetworkUnavailable, err)
	}
	if data == nil {
		return nil, nil
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, fmt.Errorf("decode product %d record: %w", productID, err)
	}
	return &product, nil
}

func (c *Client) signAndSubmit(ctx context.Context, instruction, address string, payload any) (string, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal %s payload: %w", instruction, err)
	}

	body := txBody{
		Instruction: instruction,
		Address:     address,
		Signer:      c.wallet.PublicKey(),
		Payload:     rawPayload,
	}
	rawBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal transaction body: %w", err)
	}

	signature, err := c.wallet.SignTransaction(rawBody)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}

	envelope, err := json.Marshal(txEnvelope{
		Body:      body,
		Signature: base64.StdEncoding.EncodeToString(signature),
	})
	if err != nil {
		return "", fmt.Errorf("marshal transaction envelope: %w", err)
	}

	sig, err := c.node.SubmitTransaction(ctx, envelope)
	if err != nil {
		return "", c.mapWriteError(err)
	}
	return sig, nil
}

func (c *Client) mapWriteError(err error) error {
	var rpcErr *rpc.Error
	if !errors.As(err, &rpcErr) {
		return fmt.Errorf("%w: %w", ErrNetworkUnavailable, err)
	}

	switch rpcErr.Code {
	case rpc.CodeAccountExists, rpc.CodeInvalidTransaction:
		return fmt.Errorf("%w: %s", ErrWriteRejected, rpcErr.Message)
	case rpc.CodeUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, rpcErr.Message)
	case rpc.CodeAccountNotFound:
		return fmt.Errorf("%w: %s", ErrRecordNotFound, rpcErr.Message)
	default:
		return fmt.Errorf("%w: %s", ErrWriteRejected, rpcErr.Message)
	}
}
