package ledger

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Wallet is the signing identity used to authorize ledger writes.
// Any implementation works: an in-memory key, a hardware key, a test fake.
type Wallet interface {
	// PublicKey returns the base58-encoded public key recorded as the
	// authority of every record this wallet creates.
	PublicKey() string
	// SignTransaction signs a serialized transaction body.
	SignTransaction(payload []byte) ([]byte, error)
}

// MemoryWallet holds an ed25519 key pair in process memory.
type MemoryWallet struct {
	priv ed25519.PrivateKey
}

// NewMemoryWallet wraps a 64-byte ed25519 private key.
func NewMemoryWallet(secretKey []byte) (*MemoryWallet, error) {
	if len(secretKey) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("secret key must be %d bytes, got %d", ed25519.PrivateKeySize, len(secretKey))
	}
	return &MemoryWallet{priv: ed25519.PrivateKey(secretKey)}, nil
}

// NewMemoryWalletFromJSON parses a secret key stored as a JSON array of
// byte values, the format commonly used for exported ledger keypairs.
func NewMemoryWalletFromJSON(raw string) (*MemoryWallet, error) {
	var nums []int
	if err := json.Unmarshal([]byte(raw), &nums); err != nil {
		return nil, fmt.Errorf("parse secret key: %w", err)
	}

	secret := make([]byte, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return nil, fmt.Errorf("secret key element %d out of byte range", n)
		}
		secret[i] = byte(n)
	}
	return NewMemoryWallet(secret)
}

// GenerateWallet creates a fresh random wallet.
func GenerateWallet() (*MemoryWallet, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate keypair: %w", err)
	}
	return &MemoryWallet{priv: priv}, nil
}

// PublicKey returns the base58-encoded public key.
func (w *MemoryWallet) PublicKey() string {
	return base58.Encode(w.priv.Public().(ed25519.PublicKey))
}

// SignTransaction signs the payload with the wallet's private key.
func (w *MemoryWallet) SignTransaction(payload []byte) ([]byte, error) {
	return ed25519.Sign(w.priv, payload), nil
}
