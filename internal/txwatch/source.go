package txwatch

import (
	"context"
	"errors"
	"time"
)

// ErrNoTransfers is returned by TransferSource.LatestTransfer when the address
// exists but has no token transfers yet. It is a success-shaped result, kept
// distinct from fetch failures: an empty account is not an error and must not
// appear in a cycle's failure list.
var ErrNoTransfers = errors.New("address has no token transfers")

// Transfer is the most recent token transfer known for an address.
//
// The core compares Hash for equality only; it is never parsed. Raw carries
// the provider's full payload for sinks that want attributes beyond the typed
// fields, and is never read by the core.
type Transfer struct {
	Hash string    // transaction hash, opaque identifier
	Time time.Time // transfer timestamp, zero when the provider omits it
	Raw  []byte    // provider-specific payload (extension point)
}

// TransferSource fetches the latest token transfer for a single address from
// an external data source, such as a blockchain explorer API.
type TransferSource interface {
	// LatestTransfer returns the most recent token transfer for the given
	// address, ErrNoTransfers when the address has none, or an error when the
	// source cannot be reached or returns an unusable response.
	//
	// Implementations must keep at most one request in flight at a time; the
	// upstream APIs this system targets reject concurrent requests per key.
	LatestTransfer(ctx context.Context, address string) (Transfer, error)
}
