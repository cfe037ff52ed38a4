package redis

import (
	"context"

	"github.com/gabapcia/addrwatch/internal/pkg/types"
	"github.com/gabapcia/addrwatch/internal/watchlist"
)

// watchlistKey is the Redis list holding watched addresses in insertion
// order. A list rather than a set, because the watch cycle iterates addresses
// in a stable order and emits events in that same order.
const watchlistKey = "addrwatch:watchlist"

// ListAddresses implements watchlist.AddressStorage. Duplicates are dropped
// defensively even though AddAddress never writes them.
func (c *client) ListAddresses(ctx context.Context) ([]string, error) {
	entries, err := c.conn.LRange(ctx, watchlistKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	var (
		seen      = types.NewSet[string]()
		addresses = make([]string, 0, len(entries))
	)
	for _, address := range entries {
		if seen.Contains(address) {
			continue
		}

		seen.Add(address)
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// AddAddress implements watchlist.AddressStorage by appending the address to
// the list unless it is already present.
func (c *client) AddAddress(ctx context.Context, addr watchlist.WatchedAddress) error {
	addresses, err := c.ListAddresses(ctx)
	if err != nil {
		return err
	}

	for _, existing := range addresses {
		if existing == addr.Address {
			return nil
		}
	}

	return c.conn.RPush(ctx, watchlistKey, addr.Address).Err()
}

// RemoveAddress implements watchlist.AddressStorage by deleting every
// occurrence of the address from the list.
func (c *client) RemoveAddress(ctx context.Context, addr watchlist.WatchedAddress) error {
	return c.conn.LRem(ctx, watchlistKey, 0, addr.Address).Err()
}

// Compile-time assertion to ensure *client satisfies watchlist.AddressStorage.
var _ watchlist.AddressStorage = new(client)
