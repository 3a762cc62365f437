// Package ledger implements deterministic record addressing and the
// signed read/write client for ledger-resident product records.
package ledger

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// productSeed is the domain-separation tag for product record addresses.
// Changing it moves every record, so it is fixed for the life of the system.
const productSeed = "product"

// DeriveProductAddress maps a product id to its storage address:
// base58(sha256(seed || little-endian-8(id))).
//
// The derivation is pure; the same id always yields the same address, so
// reads and writes need no index or lookup table.
func DeriveProductAddress(productID uint64) string {
	buf := make([]byte, 0, len(productSeed)+8)
	buf = append(buf, productSeed...)
	buf = binary.LittleEndian.AppendUint64(buf, productID)

	sum := sha256.Sum256(buf)
	return base58.Encode(sum[:])
}
