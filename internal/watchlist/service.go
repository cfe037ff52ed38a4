// Package watchlist manages the set of addresses the watcher polls: adding,
// removing, and listing watched addresses through a pluggable storage backend.
package watchlist

import "context"

// Service defines the interface for managing the watched address list.
//
// Implementations are responsible for validating input and delegating
// persistence to the configured AddressStorage.
type Service interface {
	// StartWatching registers an address on the watch list.
	//
	// Returns an error if validation fails or the registration cannot be
	// completed.
	StartWatching(ctx context.Context, address string) error

	// StopWatching removes an address from the watch list. Its ledger record,
	// if any, is left behind; a later re-add then resumes without a bootstrap
	// notification.
	StopWatching(ctx context.Context, address string) error

	// ListAddresses returns the current watch list in iteration order.
	ListAddresses(ctx context.Context) ([]string, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	addressStorage AddressStorage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a new watchlist service using the provided AddressStorage
// implementation.
func New(as AddressStorage) *service {
	return &service{
		addressStorage: as,
	}
}

// StartWatching validates the address and persists it on the watch list.
func (s *service) StartWatching(ctx context.Context, address string) error {
	addr, err := buildWatchedAddress(address)
	if err != nil {
		return err
	}

	return s.addressStorage.AddAddress(ctx, addr)
}

// StopWatching validates the address and removes it from the watch list.
func (s *service) StopWatching(ctx context.Context, address string) error {
	addr, err := buildWatchedAddress(address)
	if err != nil {
		return err
	}

	return s.addressStorage.RemoveAddress(ctx, addr)
}

// ListAddresses returns the current watch list.
func (s *service) ListAddresses(ctx context.Context) ([]string, error) {
	return s.addressStorage.ListAddresses(ctx)
}
