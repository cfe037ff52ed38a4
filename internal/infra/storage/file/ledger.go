package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gabapcia/addrwatch/internal/txwatch"
)

// ledgerStore persists the txwatch ledger as an indented JSON object mapping
// address to transaction hash. The format is stable across load/save cycles:
// only the key/value content matters, never field order or whitespace.
type ledgerStore struct {
	path string
}

// Compile-time assertion that *ledgerStore satisfies txwatch.LedgerStorage.
var _ txwatch.LedgerStorage = (*ledgerStore)(nil)

// NewLedgerStore creates a ledger store backed by the JSON file at path.
// The file does not need to exist yet.
func NewLedgerStore(path string) *ledgerStore {
	return &ledgerStore{
		path: path,
	}
}

// Load reads the persisted ledger. A missing file yields an empty ledger; a
// file that cannot be parsed yields an error wrapping txwatch.ErrCorruptLedger.
// Unparseable state is surfaced instead of discarded, because starting over
// from an empty ledger would re-report every address as new.
func (s *ledgerStore) Load(ctx context.Context) (txwatch.Ledger, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return txwatch.Ledger{}, nil
		}
		return nil, err
	}

	var ledger txwatch.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", txwatch.ErrCorruptLedger, s.path, err)
	}
	if ledger == nil {
		ledger = txwatch.Ledger{}
	}

	return ledger, nil
}

// Save writes the complete ledger atomically. Failures wrap
// txwatch.ErrLedgerPersist.
func (s *ledgerStore) Save(ctx context.Context, ledger txwatch.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", txwatch.ErrLedgerPersist, err)
	}

	if err := writeFileAtomic(s.path, append(data, '\n')); err != nil {
		return fmt.Errorf("%w: %v", txwatch.ErrLedgerPersist, err)
	}

	return nil
}
