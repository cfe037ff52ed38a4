package file

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/gabapcia/addrwatch/internal/pkg/types"
	"github.com/gabapcia/addrwatch/internal/watchlist"
)

// watchlistStore persists the watched address list as a plain-text file with
// one address per line. Lines keep their insertion order; duplicates and blank
// lines are dropped on read.
type watchlistStore struct {
	path string
}

// Compile-time assertion that *watchlistStore satisfies watchlist.AddressStorage.
var _ watchlist.AddressStorage = (*watchlistStore)(nil)

// NewWatchlistStore creates a watch-list store backed by the text file at
// path. The file does not need to exist yet.
func NewWatchlistStore(path string) *watchlistStore {
	return &watchlistStore{
		path: path,
	}
}

// ListAddresses returns every address in the file, first-occurrence order,
// deduplicated. A missing file is an empty watch list.
func (s *watchlistStore) ListAddresses(ctx context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var (
		seen      = types.NewSet[string]()
		addresses []string
	)
	for _, line := range strings.Split(string(data), "\n") {
		address := strings.TrimSpace(line)
		if address == "" || seen.Contains(address) {
			continue
		}

		seen.Add(address)
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// save rewrites the watch list atomically.
func (s *watchlistStore) save(addresses []string) error {
	var sb strings.Builder
	for _, address := range addresses {
		sb.WriteString(address)
		sb.WriteByte('\n')
	}

	return writeFileAtomic(s.path, []byte(sb.String()))
}

// AddAddress appends the address to the file unless it is already present.
func (s *watchlistStore) AddAddress(ctx context.Context, addr watchlist.WatchedAddress) error {
	addresses, err := s.ListAddresses(ctx)
	if err != nil {
		return err
	}

	for _, existing := range addresses {
		if existing == addr.Address {
			return nil
		}
	}

	return s.save(append(addresses, addr.Address))
}

// RemoveAddress drops the address from the file. Removing an address that is
// not on the list is a no-op.
func (s *watchlistStore) RemoveAddress(ctx context.Context, addr watchlist.WatchedAddress) error {
	addresses, err := s.ListAddresses(ctx)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(addresses))
	for _, existing := range addresses {
		if existing != addr.Address {
			kept = append(kept, existing)
		}
	}

	if len(kept) == len(addresses) {
		return nil
	}

	return s.save(kept)
}
