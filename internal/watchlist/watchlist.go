package watchlist

import (
	"context"

	"github.com/gabapcia/addrwatch/internal/pkg/validator"
)

// WatchedAddress identifies one address on the watch list.
//
// The address is required and validated before persistence. Transaction hashes
// for watched addresses live in the txwatch ledger, not here.
type WatchedAddress struct {
	Address string `validate:"required"` // account identifier on the watched chain
}

// AddressStorage defines the persistence interface for the ordered set of
// addresses being watched.
//
// The watch list is conceptually a set: adding an address twice is harmless,
// and implementations should not produce duplicates in List.
type AddressStorage interface {
	// AddAddress appends the given address to the watch list.
	// It must be idempotent.
	AddAddress(ctx context.Context, addr WatchedAddress) error

	// RemoveAddress deletes the given address from the watch list.
	// Removing an address that is not on the list is not an error.
	RemoveAddress(ctx context.Context, addr WatchedAddress) error

	// ListAddresses returns every watched address, deduplicated, in a stable
	// order suitable for iteration by a watch cycle.
	ListAddresses(ctx context.Context) ([]string, error)
}

// buildWatchedAddress constructs and validates a WatchedAddress, enforcing
// correct input before persistence.
func buildWatchedAddress(address string) (WatchedAddress, error) {
	addr := WatchedAddress{
		Address: address,
	}

	return addr, validator.Validate(addr)
}
