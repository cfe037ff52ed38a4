package txwatch

import (
	"context"
	"errors"
	"maps"
)

// ErrCorruptLedger is returned by LedgerStorage.Load when persisted state
// exists but cannot be parsed as the expected address-to-hash mapping.
//
// Corrupt state is never discarded silently: rebuilding an empty ledger would
// re-report every watched address as new on the next cycle.
var ErrCorruptLedger = errors.New("persisted ledger is corrupt")

// ErrLedgerPersist is returned by LedgerStorage.Save when the updated ledger
// cannot be written back to durable storage.
var ErrLedgerPersist = errors.New("unable to persist ledger")

// Ledger maps a watched address to the last-known transaction hash for that
// address. It is the system's durable source of truth between cycles: an entry
// changes only when a cycle observes a different latest transaction.
//
// A Ledger holds at most one hash per address. It is a plain in-memory value;
// durability is the responsibility of a LedgerStorage implementation.
type Ledger map[string]string

// Get returns the last-known transaction hash for the given address and
// whether a record exists.
func (l Ledger) Get(address string) (string, bool) {
	hash, ok := l[address]
	return hash, ok
}

// Upsert records hash as the last-known transaction for address. It is a pure
// in-memory update with no storage side effect.
func (l Ledger) Upsert(address, hash string) {
	l[address] = hash
}

// Clone returns an independent copy of the ledger.
func (l Ledger) Clone() Ledger {
	return maps.Clone(l)
}

// LedgerStorage persists and retrieves the ledger of last-known transaction
// hashes between watch cycles.
type LedgerStorage interface {
	// Load reads the persisted ledger. When no state has been persisted yet
	// it returns an empty, non-nil Ledger. When persisted state exists but
	// cannot be parsed, it returns an error wrapping ErrCorruptLedger.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	Load(ctx context.Context) (Ledger, error)

	// Save writes the complete ledger to durable storage, atomically: a crash
	// mid-write must never leave truncated or partially-written state behind.
	// Failures wrap ErrLedgerPersist.
	//
	// Save must be safe to call after a partial cycle, persisting exactly the
	// entries present in the given ledger.
	Save(ctx context.Context, ledger Ledger) error
}
