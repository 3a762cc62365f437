package ledger

import "errors"

var (
	// ErrRecordNotFound indicates no record exists at the derived address.
	// FetchProduct normalizes this case to a nil record; AddLog surfaces it.
	ErrRecordNotFound = errors.New("record not found")

	// ErrWriteRejected indicates the ledger refused a create or append,
	// e.g. the product id was already used or the input was malformed.
	ErrWriteRejected = errors.New("write rejected by ledger")

	// ErrUnauthorized indicates the signing identity does not match the
	// authority recorded at creation.
	ErrUnauthorized = errors.New("signer is not the record authority")

	// ErrNetworkUnavailable indicates a transport-level failure reaching
	// the ledger network.
	ErrNetworkUnavailable = errors.New("ledger network unavailable")
)
